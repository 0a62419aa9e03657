package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// Name printed in document headers.
const exportCompanyName = "HomeAuto Integrations"

// QuotationExportLine is one printable row of an issued quotation.
type QuotationExportLine struct {
	SINo          int
	RoomName      string
	ItemType      string
	Description   string
	Category      string
	Quantity      float64
	UnitPrice     float64
	TotalPrice    float64
	PriceFallback bool
}

// QuotationExportData carries everything the PDF and Excel renderers need.
// It is read exclusively from the frozen quotation records, never from the
// live project, so exports of an issued document are stable forever.
type QuotationExportData struct {
	CompanyName    string
	ProjectName    string
	ClientName     string
	Number         string
	Status         string
	CreatedDate    string
	AutomationType string
	Lines          []QuotationExportLine
	Subtotal       float64
	TaxPercent     float64
	TaxAmount      float64
	GrandTotal     float64
	FallbackCount  int
}

// LoadQuotationExportData assembles export data for an issued quotation from
// its frozen records.
func LoadQuotationExportData(app core.App, quotationID string) (*QuotationExportData, error) {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return nil, fmt.Errorf("quotation %s not found: %w", quotationID, err)
	}

	data := &QuotationExportData{
		CompanyName:    exportCompanyName,
		Number:         quotation.GetString("number"),
		Status:         quotation.GetString("status"),
		CreatedDate:    quotation.GetDateTime("created").Time().Format("02 Jan 2006"),
		AutomationType: quotation.GetString("automation_type"),
		Subtotal:       quotation.GetFloat("subtotal"),
		TaxPercent:     quotation.GetFloat("tax_percent"),
		TaxAmount:      quotation.GetFloat("tax_amount"),
		GrandTotal:     quotation.GetFloat("grand_total"),
	}

	if project, err := app.FindRecordById("projects", quotation.GetString("project")); err == nil {
		data.ProjectName = project.GetString("name")
		data.ClientName = project.GetString("client")
	}

	items, err := app.FindRecordsByFilter(
		"quotation_line_items",
		"quotation = {:quotation}",
		"sort_order",
		0,
		0,
		map[string]any{"quotation": quotationID},
	)
	if err != nil {
		return nil, fmt.Errorf("load quotation line items: %w", err)
	}

	for i, item := range items {
		line := QuotationExportLine{
			SINo:          i + 1,
			RoomName:      item.GetString("room_name"),
			ItemType:      item.GetString("item_type"),
			Description:   item.GetString("description"),
			Category:      item.GetString("category"),
			Quantity:      item.GetFloat("quantity"),
			UnitPrice:     item.GetFloat("unit_price"),
			TotalPrice:    item.GetFloat("total_price"),
			PriceFallback: item.GetBool("price_fallback"),
		}
		if line.PriceFallback {
			data.FallbackCount++
		}
		data.Lines = append(data.Lines, line)
	}

	return data, nil
}
