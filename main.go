package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/collections"
	"homequote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the default catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quotation pricing & issuance ─────────────────────────
		se.Router.GET("/projects/{id}/quotation/preview", handlers.HandleQuotationPreview(app))
		se.Router.POST("/projects/{id}/quotations", handlers.HandleQuotationIssue(app))
		se.Router.GET("/projects/{id}/quotations", handlers.HandleQuotationList(app))

		// ── Quotation lifecycle ──────────────────────────────────
		se.Router.POST("/projects/{projectId}/quotations/{id}/send", handlers.HandleQuotationTransition(app, "send"))
		se.Router.POST("/projects/{projectId}/quotations/{id}/accept", handlers.HandleQuotationTransition(app, "accept"))
		se.Router.POST("/projects/{projectId}/quotations/{id}/reject", handlers.HandleQuotationTransition(app, "reject"))

		// ── Quotation documents ──────────────────────────────────
		se.Router.GET("/projects/{projectId}/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app))
		se.Router.GET("/projects/{projectId}/quotations/{id}/export/excel", handlers.HandleQuotationExportExcel(app))
		se.Router.GET("/projects/{projectId}/quotations/{id}", handlers.HandleQuotationView(app))

		// ── Room contents ────────────────────────────────────────
		se.Router.POST("/rooms/{id}/panels", handlers.HandlePanelSave(app))
		se.Router.POST("/rooms/{id}/appliances", handlers.HandleApplianceSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
