package services

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is intentionally loose: non-whitespace local part, "@",
// non-whitespace domain containing a dot. Anything stricter belongs to
// the intake backend, not the form.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Line-item violations are keyed "line_items.<index>.<field>" so every
// offending row can show its own inline message.
func lineItemKey(index int, field string) string {
	return fmt.Sprintf("line_items.%d.%s", index, field)
}

// Validate checks the whole draft against the business rules and returns
// the violations keyed by field identity. All rules run unconditionally
// (no short-circuit) and the state is never touched; the draft is ready
// for submission iff the returned map is empty.
//
// Callers run this on submit attempts, not on every keystroke, and keep
// the returned map for inline display.
func Validate(state FormState) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(state.Company) == "" {
		errors["company"] = "Company is required"
	}
	if strings.TrimSpace(state.Contact) == "" {
		errors["contact"] = "Contact person is required"
	}
	if !emailPattern.MatchString(state.Email) {
		errors["email"] = "A valid email address is required"
	}
	if state.DeliveryDate == "" {
		errors["delivery_date"] = "Delivery date is required"
	}

	if len(state.LineItems) == 0 {
		errors["line_items"] = "At least one line item is required"
	}
	for i, item := range state.LineItems {
		if strings.TrimSpace(item.PartName) == "" {
			errors[lineItemKey(i, "part_name")] = "Part name is required"
		}
		// item.Qty > 0 is false for zero, negatives and NaN alike.
		if !(item.Qty > 0) {
			errors[lineItemKey(i, "qty")] = "Quantity must be greater than zero"
		}
	}

	return errors
}
