package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/engine"
	"homequote/services"
)

// HandleQuotationIssue prices the project and freezes the result into a new
// draft quotation document.
func HandleQuotationIssue(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		project, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return e.String(http.StatusNotFound, "Project not found")
		}

		comp, err := buildQuotationComputation(app, project)
		if err != nil {
			var ve *engine.ValidationError
			if errors.As(err, &ve) {
				return e.JSON(http.StatusBadRequest, map[string]any{"error": ve.Error()})
			}
			log.Printf("quotation_issue: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to compute quotation")
		}

		record, err := services.IssueQuotation(app, projectID, comp.Snapshot, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrEmptyQuotation) {
				return e.JSON(http.StatusBadRequest, map[string]any{
					"error": "Nothing to quote: the project has no priceable line items",
				})
			}
			log.Printf("quotation_issue: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to issue quotation")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"id":             record.Id,
			"number":         record.GetString("number"),
			"status":         record.GetString("status"),
			"grand_total":    record.GetFloat("grand_total"),
			"fallback_count": comp.FallbackCount,
			"warnings":       comp.Warnings,
		})
	}
}
