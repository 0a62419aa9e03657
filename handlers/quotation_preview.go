package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/engine"
	"homequote/services"
)

// quotationComputation is everything a pricing run produces: the snapshot
// ready to freeze plus preview-only context (warnings, packing
// justifications).
type quotationComputation struct {
	Snapshot       services.QuotationSnapshot
	Warnings       []engine.BOQWarning
	FallbackCount  int
	Justifications []string
}

// buildQuotationComputation prices a project end to end: BOQ from the rooms,
// wired-cost aggregation when the project has wired rooms, totals on top.
// Preview and issue share this so the issued document always matches the
// last preview.
func buildQuotationComputation(app *pocketbase.PocketBase, project *core.Record) (*quotationComputation, error) {
	rooms, err := loadRooms(app, project.Id)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(app)
	if err != nil {
		return nil, err
	}

	boq := engine.BuildBOQ(rooms, catalog)

	comp := &quotationComputation{
		Warnings: boq.Warnings,
	}

	automationType := engine.AutomationWireless
	for _, room := range rooms {
		if room.AutomationType == engine.AutomationWired {
			automationType = engine.AutomationWired
			break
		}
	}

	for _, item := range boq.LineItems {
		comp.Snapshot.Lines = append(comp.Snapshot.Lines, services.SnapshotLine{
			RoomName:      item.RoomName,
			ItemType:      string(item.ItemType),
			Description:   item.Name,
			Category:      item.Category,
			Quantity:      float64(item.Quantity),
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
			PriceFallback: item.PriceFallback,
		})
	}

	automationCost := 0.0
	if automationType == engine.AutomationWired {
		wiredCatalog, err := loadWiredCatalog(app, catalog)
		if err != nil {
			return nil, err
		}

		extraChannels := int(project.GetFloat("extra_channels"))
		wireLength := project.GetFloat("wire_length_meters")

		breakdown, err := engine.AggregateWired(rooms, extraChannels, wireLength, wiredCatalog)
		if err != nil {
			return nil, err
		}
		automationCost = breakdown.TotalCost

		comp.Snapshot.Lines = append(comp.Snapshot.Lines, automationLines(breakdown, wiredCatalog)...)
		if breakdown.ActuatorPacking.Justification != "" {
			comp.Justifications = append(comp.Justifications, "Actuators: "+breakdown.ActuatorPacking.Justification)
		}
		if breakdown.LightingPacking.Justification != "" {
			comp.Justifications = append(comp.Justifications, "Lighting: "+breakdown.LightingPacking.Justification)
		}
	}

	totals := engine.ComputeTotals(boq.LineItems, automationCost, project.GetFloat("tax_percent"))

	comp.Snapshot.AutomationType = string(automationType)
	comp.Snapshot.Subtotal = totals.Subtotal
	comp.Snapshot.TaxPercent = totals.TaxPercent
	comp.Snapshot.TaxAmount = totals.TaxAmount
	comp.Snapshot.GrandTotal = totals.GrandTotal

	for _, line := range comp.Snapshot.Lines {
		if line.PriceFallback {
			comp.FallbackCount++
		}
	}

	return comp, nil
}

// automationLines turns the wired breakdown into document rows: one per
// packed module type, one per mandatory component, one for the wiring run.
func automationLines(breakdown engine.WiredBreakdown, catalog engine.WiredCatalog) []services.SnapshotLine {
	var lines []services.SnapshotLine

	packed := append([]engine.ModuleLine{}, breakdown.ActuatorPacking.Modules...)
	packed = append(packed, breakdown.LightingPacking.Modules...)
	for _, m := range packed {
		lines = append(lines, services.SnapshotLine{
			ItemType:    "automation",
			Description: m.Name,
			Category:    "Automation Module",
			Quantity:    float64(m.Quantity),
			UnitPrice:   m.Price,
			TotalPrice:  m.Price * float64(m.Quantity),
		})
	}

	for _, c := range breakdown.Mandatory {
		lines = append(lines, services.SnapshotLine{
			ItemType:    "automation",
			Description: c.Name,
			Category:    "Automation Infrastructure",
			Quantity:    1,
			UnitPrice:   c.Price,
			TotalPrice:  c.Price,
		})
	}

	if breakdown.WireLengthMeters > 0 {
		lines = append(lines, services.SnapshotLine{
			ItemType:    "wiring",
			Description: fmt.Sprintf("Control wiring (%.0f m)", breakdown.WireLengthMeters),
			Category:    "Wiring",
			Quantity:    breakdown.WireLengthMeters,
			UnitPrice:   catalog.WirePricePerMeter,
			TotalPrice:  breakdown.WiringCost,
		})
	}

	return lines
}

// HandleQuotationPreview prices a project and returns the would-be document
// without persisting anything.
func HandleQuotationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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
			log.Printf("quotation_preview: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to compute quotation")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"automation_type": comp.Snapshot.AutomationType,
			"lines":           comp.Snapshot.Lines,
			"subtotal":        comp.Snapshot.Subtotal,
			"tax_percent":     comp.Snapshot.TaxPercent,
			"tax_amount":      comp.Snapshot.TaxAmount,
			"grand_total":     comp.Snapshot.GrandTotal,
			"warnings":        comp.Warnings,
			"fallback_count":  comp.FallbackCount,
			"justifications":  comp.Justifications,
		})
	}
}
