package services

import (
	"fmt"
	"strings"

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

// GenerateQuotationPDF renders an issued quotation as a PDF using maroto/v2
// and returns the raw document bytes.
func GenerateQuotationPDF(data *QuotationExportData) ([]byte, error) {
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

	addQuotationHeader(m, data)
	addQuotationMeta(m, data)
	addQuotationLinesTable(m, data)
	addQuotationTotals(m, data)
	addQuotationFallbackNote(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the company name and document title.
func addQuotationHeader(m core.Maroto, data *QuotationExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTATION", props.Text{
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
				text.New(data.ProjectName, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("No: %s", data.Number), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationMeta adds client, date, automation type and status.
func addQuotationMeta(m core.Maroto, data *QuotationExportData) {
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

	metaRows := []struct{ label, value string }{
		{"Client", data.ClientName},
		{"Date", data.CreatedDate},
		{"Automation", strings.ToUpper(data.AutomationType)},
		{"Status", strings.ToUpper(data.Status)},
	}

	for _, mr := range metaRows {
		if mr.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(mr.label, labelStyle)),
				col.New(9).Add(text.New(mr.value, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationLinesTable adds the line items table.
func addQuotationLinesTable(m core.Maroto, data *QuotationExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("SI No", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Room", headerTextLeft)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, line := range data.Lines {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		desc := line.Description
		if line.PriceFallback {
			desc += " *"
		}

		colSINo := col.New(1).Add(text.New(fmt.Sprintf("%d", line.SINo), bodyText))
		colRoom := col.New(2).Add(text.New(line.RoomName, bodyTextLeft))
		colDesc := col.New(4).Add(text.New(desc, bodyTextLeft))
		colQty := col.New(1).Add(text.New(formatQuantity(line.Quantity), bodyTextRight))
		colUnit := col.New(2).Add(text.New(FormatINR(line.UnitPrice), bodyTextRight))
		colTotal := col.New(2).Add(text.New(FormatINR(line.TotalPrice), bodyTextRight))

		if cellStyle != nil {
			colSINo = colSINo.WithStyle(cellStyle)
			colRoom = colRoom.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colUnit = colUnit.WithStyle(cellStyle)
			colTotal = colTotal.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colSINo, colRoom, colDesc, colQty, colUnit, colTotal),
		)
	}

	m.AddRows(row.New(2))
}

// addQuotationTotals adds the subtotal, tax and grand total rows.
func addQuotationTotals(m core.Maroto, data *QuotationExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatINR(data.Subtotal), valueStyle)).WithStyle(summaryCell),
		),
	)

	taxLabel := fmt.Sprintf("GST %.0f%%", data.TaxPercent)
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New(taxLabel, labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatINR(data.TaxAmount), valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(data.GrandTotal), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationFallbackNote flags line items priced with the default
// fallback rate so the reader knows which figures need catalog review.
func addQuotationFallbackNote(m core.Maroto, data *QuotationExportData) {
	if data.FallbackCount == 0 {
		return
	}

	note := fmt.Sprintf("* %d item(s) priced at the default fallback rate; verify against the price catalog before sending.", data.FallbackCount)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(note, props.Text{
				Size:  7,
				Style: fontstyle.Italic,
				Align: align.Left,
				Color: &props.Color{Red: 150, Green: 60, Blue: 60},
			})),
		),
	)
}
