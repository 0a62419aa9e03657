package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/services"
)

// HandleQuotationView returns an issued quotation with its frozen line
// items.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		data, err := services.LoadQuotationExportData(app, quotationID)
		if err != nil {
			log.Printf("quotation_view: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		lines := make([]map[string]any, 0, len(data.Lines))
		for _, line := range data.Lines {
			lines = append(lines, map[string]any{
				"si_no":          line.SINo,
				"room_name":      line.RoomName,
				"item_type":      line.ItemType,
				"description":    line.Description,
				"category":       line.Category,
				"quantity":       line.Quantity,
				"unit_price":     line.UnitPrice,
				"total_price":    line.TotalPrice,
				"price_fallback": line.PriceFallback,
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"number":          data.Number,
			"status":          data.Status,
			"project_name":    data.ProjectName,
			"client_name":     data.ClientName,
			"created":         data.CreatedDate,
			"automation_type": data.AutomationType,
			"lines":           lines,
			"subtotal":        data.Subtotal,
			"tax_percent":     data.TaxPercent,
			"tax_amount":      data.TaxAmount,
			"grand_total":     data.GrandTotal,
			"fallback_count":  data.FallbackCount,
		})
	}
}
