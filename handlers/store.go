// Package handlers wires the HTTP surface: room and appliance editing,
// panel validation, quotation preview/issue/lifecycle and document exports.
// Handlers load records, hand them to the engine or services, and translate
// the outcome to JSON responses; they hold no pricing logic themselves.
package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/engine"
)

// loadRooms assembles the engine's room tree for a project: rooms in
// sort_order, each with its appliances and panels, also in sort_order.
func loadRooms(app *pocketbase.PocketBase, projectID string) ([]engine.Room, error) {
	roomRecords, err := app.FindRecordsByFilter(
		"rooms",
		"project = {:project}",
		"sort_order",
		0,
		0,
		map[string]any{"project": projectID},
	)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	var rooms []engine.Room
	for _, rr := range roomRecords {
		room := engine.Room{
			ID:             rr.Id,
			Name:           rr.GetString("name"),
			AutomationType: engine.AutomationType(rr.GetString("automation_type")),
		}

		appliances, err := app.FindRecordsByFilter(
			"appliances",
			"room = {:room}",
			"sort_order",
			0,
			0,
			map[string]any{"room": rr.Id},
		)
		if err != nil {
			return nil, fmt.Errorf("load appliances for room %s: %w", rr.Id, err)
		}
		for _, ar := range appliances {
			line := engine.ApplianceLine{
				ID:          ar.Id,
				Name:        ar.GetString("name"),
				Category:    ar.GetString("category"),
				Subcategory: ar.GetString("subcategory"),
				Wattage:     int(ar.GetFloat("wattage")),
				Quantity:    int(ar.GetFloat("quantity")),
			}
			var metadata map[string]string
			if err := ar.UnmarshalJSONField("metadata", &metadata); err == nil {
				line.Metadata = metadata
			}
			room.Appliances = append(room.Appliances, line)
		}

		panels, err := app.FindRecordsByFilter(
			"panels",
			"room = {:room}",
			"sort_order",
			0,
			0,
			map[string]any{"room": rr.Id},
		)
		if err != nil {
			return nil, fmt.Errorf("load panels for room %s: %w", rr.Id, err)
		}
		for _, pr := range panels {
			room.Panels = append(room.Panels, panelFromRecord(pr))
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

// panelFromRecord maps a panel record onto the engine's panel type,
// decoding the JSON vendor tag and component slot fields.
func panelFromRecord(pr *core.Record) engine.PanelInstance {
	panel := engine.PanelInstance{
		ID:         pr.Id,
		Name:       pr.GetString("name"),
		ModuleSize: int(pr.GetFloat("module_size")),
	}

	var tags []string
	if err := pr.UnmarshalJSONField("vendor_tags", &tags); err == nil {
		panel.VendorTags = tags
	}

	var slots []struct {
		Type           string `json:"type"`
		Quantity       int    `json:"quantity"`
		ModulesPerUnit int    `json:"modules_per_unit"`
	}
	if err := pr.UnmarshalJSONField("components", &slots); err == nil {
		for _, s := range slots {
			panel.Components = append(panel.Components, engine.ComponentSlot{
				Type:           s.Type,
				Quantity:       s.Quantity,
				ModulesPerUnit: s.ModulesPerUnit,
			})
		}
	}

	return panel
}

// loadCatalog reads the full price list in sort_order. Entry order is the
// resolver's tie-break, so the sort matters.
func loadCatalog(app *pocketbase.PocketBase) (engine.Catalog, error) {
	records, err := app.FindRecordsByFilter("price_entries", "id != ''", "sort_order", 0, 0)
	if err != nil {
		return engine.Catalog{}, fmt.Errorf("load price entries: %w", err)
	}

	catalog := engine.Catalog{}
	for _, r := range records {
		catalog.Entries = append(catalog.Entries, engine.PriceEntry{
			Category:     r.GetString("category"),
			Subcategory:  r.GetString("subcategory"),
			Wattage:      int(r.GetFloat("wattage")),
			VendorTag:    r.GetString("vendor_tag"),
			PricePerUnit: r.GetFloat("price_per_unit"),
		})
	}
	return catalog, nil
}

// loadWiredCatalog reads module types, mandatory components and the
// per-meter wire rate. The wire rate lives in the price list under the
// "Wiring" category so it resolves through the same machinery as
// everything else.
func loadWiredCatalog(app *pocketbase.PocketBase, catalog engine.Catalog) (engine.WiredCatalog, error) {
	moduleRecords, err := app.FindRecordsByFilter("module_types", "id != ''", "sort_order", 0, 0)
	if err != nil {
		return engine.WiredCatalog{}, fmt.Errorf("load module types: %w", err)
	}

	wired := engine.WiredCatalog{}
	for _, r := range moduleRecords {
		module := engine.ModuleType{
			Name:     r.GetString("name"),
			Capacity: int(r.GetFloat("capacity")),
			Price:    r.GetFloat("price"),
		}
		switch r.GetString("class") {
		case "actuator":
			wired.ActuatorModules = append(wired.ActuatorModules, module)
		case "lighting":
			wired.LightingModules = append(wired.LightingModules, module)
		}
	}

	componentRecords, err := app.FindRecordsByFilter("wired_components", "id != ''", "sort_order", 0, 0)
	if err != nil {
		return engine.WiredCatalog{}, fmt.Errorf("load wired components: %w", err)
	}
	for _, r := range componentRecords {
		wired.Mandatory = append(wired.Mandatory, engine.FixedComponent{
			Name:  r.GetString("name"),
			Price: r.GetFloat("price"),
		})
	}

	wireRate := catalog.ResolvePrice(engine.LineSpec{Category: "Wiring"})
	if !wireRate.Fallback {
		wired.WirePricePerMeter = wireRate.UnitPrice
	}

	return wired, nil
}
