package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/services"
)

// HandleQuotationTransition applies a lifecycle action (send, accept,
// reject) to a quotation. Illegal transitions return 409 and leave the
// document untouched; re-sending a sent document is a 200 no-op.
func HandleQuotationTransition(app *pocketbase.PocketBase, action string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := services.TransitionQuotation(app, quotationID, action, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadySent):
				return e.JSON(http.StatusOK, map[string]any{
					"id":     record.Id,
					"status": record.GetString("status"),
					"note":   "quotation was already sent",
				})
			case errors.Is(err, services.ErrStateConflict):
				return e.JSON(http.StatusConflict, map[string]any{"error": err.Error()})
			default:
				log.Printf("quotation_transition: %v", err)
				return e.String(http.StatusNotFound, "Quotation not found")
			}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":     record.Id,
			"number": record.GetString("number"),
			"status": record.GetString("status"),
		})
	}
}
