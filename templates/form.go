// Package templates renders the RFQ form views as templ components.
// Components are written against the templ runtime API and stream plain
// HTML; handlers render them straight into the response.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"rfqintake/services"
)

// FormData is everything the form views need for one render.
type FormData struct {
	State             services.FormState
	Errors            map[string]string
	TotalQty          float64
	AllowedExtensions string
}

// FormPage renders the full HTML page around the form content.
func FormPage(d FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString("<meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		b.WriteString("<title>Request for Quotation</title>")
		b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\"></script>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/app.css\">")
		// Minimal toast listener for the HX-Trigger showToast events.
		b.WriteString("<script>document.addEventListener('showToast', function (evt) {")
		b.WriteString("var d = evt.detail || {}; var el = document.createElement('div');")
		b.WriteString("el.className = 'toast toast-' + (d.type || 'info'); el.textContent = d.message || '';")
		b.WriteString("document.body.appendChild(el); setTimeout(function () { el.remove(); }, 4000);")
		b.WriteString("});</script>")
		b.WriteString("</head><body>")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := FormContent(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// FormContent renders the editable form. Every control re-renders this
// fragment through hx-target inheritance on the container, so the view is
// always a function of the latest draft snapshot.
func FormContent(d FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<main id="rfq-form" hx-target="#rfq-form" hx-swap="outerHTML">`)
		b.WriteString(`<h1>Request for Quotation</h1>`)

		if d.State.Submitted {
			b.WriteString(`<div class="banner banner-success">RFQ submitted. You can keep editing and submit again.</div>`)
		}

		writeBuyerSection(&b, d)
		writeTermsSection(&b, d)
		writeFilesSection(&b, d)
		writeLineItemsSection(&b, d)
		writeActions(&b)

		b.WriteString(`</main>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeBuyerSection(b *strings.Builder, d FormData) {
	b.WriteString(`<section class="buyer"><h2>Buyer</h2>`)
	writeTextField(b, d, "company", "Company", d.State.Company)
	writeTextField(b, d, "contact", "Contact person", d.State.Contact)
	writeTextField(b, d, "email", "Email", d.State.Email)
	writeTextField(b, d, "phone", "Phone", d.State.Phone)
	writeTextField(b, d, "address", "Address", d.State.Address)
	b.WriteString(`</section>`)
}

func writeTermsSection(b *strings.Builder, d FormData) {
	b.WriteString(`<section class="terms"><h2>Shipping &amp; Commercial Terms</h2>`)

	writeSelect(b, "incoterms", "Incoterms", string(d.State.Incoterms), incotermValues())
	writeSelect(b, "currency", "Currency", string(d.State.Currency), currencyValues())
	writeSelect(b, "shipping_preference", "Shipping", string(d.State.ShippingPreference), shippingValues())

	b.WriteString(`<label>Delivery date`)
	fmt.Fprintf(b, `<input type="date" name="value" value="%s" hx-post="/rfq/fields?name=delivery_date" hx-trigger="change">`,
		templ.EscapeString(d.State.DeliveryDate))
	b.WriteString(`</label>`)
	writeFieldError(b, d, "delivery_date")

	checked := ""
	if d.State.NDA {
		checked = " checked"
	}
	b.WriteString(`<label class="checkbox">`)
	fmt.Fprintf(b, `<input type="checkbox" name="value" value="on"%s hx-post="/rfq/fields?name=nda" hx-trigger="change">`, checked)
	b.WriteString(` NDA required before detailed drawings are shared</label>`)

	b.WriteString(`</section>`)
}

func writeFilesSection(b *strings.Builder, d FormData) {
	b.WriteString(`<section class="files"><h2>CAD &amp; Drawing Files</h2>`)
	if len(d.State.Files) == 0 {
		b.WriteString(`<p class="empty">No files attached.</p>`)
	} else {
		b.WriteString(`<ul class="file-list">`)
		for i, f := range d.State.Files {
			b.WriteString(`<li>`)
			fmt.Fprintf(b, `<span class="file-name">%s</span> <span class="file-size">%s</span>`,
				templ.EscapeString(f.Name), templ.EscapeString(services.FormatFileSize(f.Size)))
			fmt.Fprintf(b, `<button type="button" hx-delete="/rfq/files/%d">Remove</button>`, i)
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`<form hx-post="/rfq/files" hx-encoding="multipart/form-data">`)
	b.WriteString(`<input type="file" name="files" multiple>`)
	b.WriteString(`<button type="submit">Attach</button>`)
	fmt.Fprintf(b, `<p class="hint">Accepted: %s</p>`, templ.EscapeString(d.AllowedExtensions))
	b.WriteString(`</form></section>`)
}

func writeLineItemsSection(b *strings.Builder, d FormData) {
	b.WriteString(`<section class="line-items"><h2>Parts</h2>`)
	writeFieldError(b, d, "line_items")

	for i, item := range d.State.LineItems {
		fmt.Fprintf(b, `<fieldset class="line-item"><legend>Part %d</legend>`, i+1)

		writeItemField(b, d, i, "part_name", "Part name", item.PartName)
		writeItemField(b, d, i, "material", "Material", item.Material)
		writeItemField(b, d, i, "tolerance", "Tolerance", item.Tolerance)
		writeItemField(b, d, i, "surface", "Surface finish", item.Surface)
		writeItemField(b, d, i, "heat_treatment", "Heat treatment", item.HeatTreatment)
		writeItemField(b, d, i, "notes", "Notes", item.Notes)

		b.WriteString(`<label>Qty`)
		fmt.Fprintf(b, `<input type="number" min="0" step="any" name="qty" value="%s" hx-patch="/rfq/line-items/%d" hx-trigger="change">`,
			templ.EscapeString(services.FormatQty(item.Qty)), i)
		b.WriteString(`</label>`)
		writeFieldError(b, d, fmt.Sprintf("line_items.%d.qty", i))

		if len(d.State.LineItems) > 1 {
			fmt.Fprintf(b, `<button type="button" hx-delete="/rfq/line-items/%d">Remove part</button>`, i)
		}
		b.WriteString(`</fieldset>`)
	}

	b.WriteString(`<button type="button" hx-post="/rfq/line-items">Add part</button>`)
	fmt.Fprintf(b, `<p class="total">Total quantity: %s</p>`, templ.EscapeString(services.FormatQty(d.TotalQty)))
	b.WriteString(`</section>`)
}

func writeActions(b *strings.Builder) {
	b.WriteString(`<section class="actions">`)
	b.WriteString(`<button type="button" class="primary" hx-post="/rfq/submit">Submit RFQ</button>`)
	b.WriteString(`<button type="button" hx-post="/rfq/reset" hx-confirm="Discard this draft?">Reset</button>`)
	b.WriteString(`<a href="/rfq/export/json">Download JSON</a>`)
	b.WriteString(`<a href="/rfq/export/pdf">Download PDF</a>`)
	b.WriteString(`<a href="/rfq/export/excel">Download Excel</a>`)
	b.WriteString(`<a href="/rfq/print" target="_blank">Print view</a>`)
	b.WriteString(`</section>`)
}

func writeTextField(b *strings.Builder, d FormData, name, label, value string) {
	fmt.Fprintf(b, `<label>%s`, templ.EscapeString(label))
	fmt.Fprintf(b, `<input type="text" name="value" value="%s" hx-post="/rfq/fields?name=%s" hx-trigger="change">`,
		templ.EscapeString(value), name)
	b.WriteString(`</label>`)
	writeFieldError(b, d, name)
}

func writeItemField(b *strings.Builder, d FormData, index int, name, label, value string) {
	fmt.Fprintf(b, `<label>%s`, templ.EscapeString(label))
	fmt.Fprintf(b, `<input type="text" name="%s" value="%s" hx-patch="/rfq/line-items/%d" hx-trigger="change">`,
		name, templ.EscapeString(value), index)
	b.WriteString(`</label>`)
	writeFieldError(b, d, fmt.Sprintf("line_items.%d.%s", index, name))
}

func writeSelect(b *strings.Builder, name, label, selected string, options []string) {
	fmt.Fprintf(b, `<label>%s`, templ.EscapeString(label))
	fmt.Fprintf(b, `<select name="value" hx-post="/rfq/fields?name=%s" hx-trigger="change">`, name)
	for _, opt := range options {
		sel := ""
		if opt == selected {
			sel = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, templ.EscapeString(opt), sel, templ.EscapeString(opt))
	}
	b.WriteString(`</select></label>`)
}

func writeFieldError(b *strings.Builder, d FormData, key string) {
	if msg, ok := d.Errors[key]; ok {
		fmt.Fprintf(b, `<span class="field-error">%s</span>`, templ.EscapeString(msg))
	}
}

func incotermValues() []string {
	out := make([]string, len(services.IncotermOptions))
	for i, v := range services.IncotermOptions {
		out[i] = string(v)
	}
	return out
}

func currencyValues() []string {
	out := make([]string, len(services.CurrencyOptions))
	for i, v := range services.CurrencyOptions {
		out[i] = string(v)
	}
	return out
}

func shippingValues() []string {
	out := make([]string, len(services.ShippingOptions))
	for i, v := range services.ShippingOptions {
		out[i] = string(v)
	}
	return out
}
