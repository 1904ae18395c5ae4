package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"rfqintake/services"
)

// PrintPage renders the print-friendly view of the RFQ. It takes the
// payload rather than the raw state: what prints is exactly what would
// be submitted.
func PrintPage(p services.Payload) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<title>RFQ Print View</title>`)
		b.WriteString(`<link rel="stylesheet" href="/static/print.css" media="all">`)
		b.WriteString(`<script>window.addEventListener('load', function () { window.print(); });</script>`)
		b.WriteString(`</head><body class="print">`)

		b.WriteString(`<header>`)
		fmt.Fprintf(&b, `<h1>Request for Quotation</h1><p class="meta">%s · created %s</p>`,
			templ.EscapeString(p.Company), templ.EscapeString(p.Meta.CreatedAt))
		b.WriteString(`</header>`)

		b.WriteString(`<section><h2>Buyer</h2><dl>`)
		writeDef(&b, "Company", p.Company)
		writeDef(&b, "Contact", p.Contact)
		writeDef(&b, "Email", p.Email)
		writeDef(&b, "Phone", p.Phone)
		writeDef(&b, "Address", p.Address)
		b.WriteString(`</dl></section>`)

		nda := "No"
		if p.NDA {
			nda = "Yes"
		}
		b.WriteString(`<section><h2>Commercial Terms</h2><dl>`)
		writeDef(&b, "Incoterms", p.Incoterms)
		writeDef(&b, "Delivery date", p.DeliveryDate)
		writeDef(&b, "Currency", p.Currency)
		writeDef(&b, "Shipping", p.ShippingPreference)
		writeDef(&b, "NDA requested", nda)
		b.WriteString(`</dl></section>`)

		b.WriteString(`<section><h2>Parts</h2>`)
		b.WriteString(`<table><thead><tr><th>#</th><th>Part name</th><th>Material</th><th>Tolerance</th><th>Surface</th><th>Heat treatment</th><th>Notes</th><th>Qty</th></tr></thead><tbody>`)
		for i, item := range p.LineItems {
			fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				i+1,
				templ.EscapeString(item.PartName),
				templ.EscapeString(item.Material),
				templ.EscapeString(item.Tolerance),
				templ.EscapeString(item.Surface),
				templ.EscapeString(item.HeatTreatment),
				templ.EscapeString(item.Notes),
				templ.EscapeString(services.FormatQty(item.Qty)))
		}
		b.WriteString(`</tbody></table></section>`)

		if len(p.Files) > 0 {
			b.WriteString(`<section><h2>Attachments</h2><ul>`)
			for _, f := range p.Files {
				fmt.Fprintf(&b, `<li>%s (%s)</li>`,
					templ.EscapeString(f.Name), templ.EscapeString(services.FormatFileSize(f.Size)))
			}
			b.WriteString(`</ul></section>`)
		}

		fmt.Fprintf(&b, `<footer><p>Generated by %s v%d</p></footer>`,
			templ.EscapeString(p.Meta.App), p.Meta.Version)
		b.WriteString(`</body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeDef(b *strings.Builder, term, def string) {
	if def == "" {
		def = "—"
	}
	fmt.Fprintf(b, `<dt>%s</dt><dd>%s</dd>`, templ.EscapeString(term), templ.EscapeString(def))
}
