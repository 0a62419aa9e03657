package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationList returns the quotations of a project, newest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("projects", projectID); err != nil {
			return e.String(http.StatusNotFound, "Project not found")
		}

		records, err := app.FindRecordsByFilter(
			"quotations",
			"project = {:project}",
			"-created",
			0,
			0,
			map[string]any{"project": projectID},
		)
		if err != nil {
			log.Printf("quotation_list: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotations")
		}

		list := make([]map[string]any, 0, len(records))
		for _, r := range records {
			list = append(list, map[string]any{
				"id":          r.Id,
				"number":      r.GetString("number"),
				"status":      r.GetString("status"),
				"grand_total": r.GetFloat("grand_total"),
				"created":     r.GetDateTime("created").String(),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotations": list})
	}
}
