package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateRFQPDF renders the print-friendly view of the RFQ as a PDF
// document using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateRFQPDF(p Payload) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addRFQHeader(m, p)
	addBuyerAndTerms(m, p)
	addLineItemsTable(m, p)
	addAttachments(m, p)
	addRFQFooter(m, p)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate RFQ PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addRFQHeader adds the buyer company name, the document title and the creation date.
func addRFQHeader(m core.Maroto, p Payload) {
	companyName := p.Company
	if companyName == "" {
		companyName = "—"
	}

	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(companyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("REQUEST FOR QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", p.Contact, p.Email), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New("Created: "+p.Meta.CreatedAt, props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	// Divider spacer
	m.AddRows(row.New(3))
}

// addBuyerAndTerms adds buyer details on the left and commercial terms on the right.
func addBuyerAndTerms(m core.Maroto, p Payload) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := labelStyle
	rightLabelStyle.Align = align.Right
	rightValueStyle := valueStyle
	rightValueStyle.Align = align.Right

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("BUYER", labelStyle)),
			col.New(6).Add(text.New("COMMERCIAL TERMS", rightLabelStyle)),
		),
	)

	nda := "No"
	if p.NDA {
		nda = "Yes"
	}

	left := []string{p.Phone, p.Address}
	right := [][2]string{
		{"Incoterms:", p.Incoterms},
		{"Delivery Date:", p.DeliveryDate},
		{"Currency:", p.Currency},
		{"Shipping:", p.ShippingPreference},
		{"NDA Requested:", nda},
	}

	for i := 0; i < len(right); i++ {
		var leftText string
		if i < len(left) {
			leftText = left[i]
		}
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(leftText, valueStyle)),
				col.New(3).Add(text.New(right[i][0], rightLabelStyle)),
				col.New(3).Add(text.New(right[i][1], rightValueStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addLineItemsTable adds the column header row and one row per line item.
func addLineItemsTable(m core.Maroto, p Payload) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Part Name", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Material", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Tol.", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Surface", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Heat Treat.", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
		),
	)

	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	noteText := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	altBg := &props.Color{Red: 245, Green: 245, Blue: 245}

	for i, item := range p.LineItems {
		cols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), baseText)),
			col.New(3).Add(text.New(item.PartName, leftText)),
			col.New(2).Add(text.New(item.Material, leftText)),
			col.New(1).Add(text.New(item.Tolerance, baseText)),
			col.New(2).Add(text.New(item.Surface, leftText)),
			col.New(2).Add(text.New(item.HeatTreatment, leftText)),
			col.New(1).Add(text.New(FormatQty(item.Qty), rightText)),
		}

		if i%2 == 1 {
			cellStyle := &props.Cell{BackgroundColor: altBg}
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}

		m.AddRows(row.New(7).Add(cols...))

		if item.Notes != "" {
			m.AddRows(
				row.New(5).Add(
					col.New(1),
					col.New(11).Add(text.New("Note: "+item.Notes, noteText)),
				),
			)
		}
	}

	// Total quantity summary
	var totalQty float64
	for _, item := range p.LineItems {
		totalQty += item.Qty
	}

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	summaryStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(row.New(3))
	m.AddRows(
		row.New(8).Add(
			col.New(11).Add(text.New("Total Quantity", summaryStyle)).WithStyle(summaryCell),
			col.New(1).Add(text.New(FormatQty(totalQty), summaryStyle)).WithStyle(summaryCell),
		),
	)
}

// addAttachments lists the attached file references (name and size only).
func addAttachments(m core.Maroto, p Payload) {
	if len(p.Files) == 0 {
		return
	}

	m.AddRows(row.New(5))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("ATTACHMENTS", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)

	fileStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	for _, f := range p.Files {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(
					fmt.Sprintf("%s (%s)", f.Name, FormatFileSize(f.Size)),
					fileStyle,
				)),
			),
		)
	}
}

// addRFQFooter adds the generated-by line at the bottom.
func addRFQFooter(m core.Maroto, p Payload) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated by %s v%d on %s", p.Meta.App, p.Meta.Version, p.Meta.CreatedAt),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
