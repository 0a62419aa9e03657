package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/engine"
)

type panelSlotInput struct {
	Type           string `json:"type"`
	Quantity       int    `json:"quantity"`
	ModulesPerUnit int    `json:"modules_per_unit"`
}

type panelSaveInput struct {
	Name       string           `json:"name"`
	ModuleSize int              `json:"module_size"`
	VendorTags []string         `json:"vendor_tags"`
	Components []panelSlotInput `json:"components"`
	SortOrder  int              `json:"sort_order"`
}

// HandlePanelSave creates a touch panel in a room. The panel is validated
// against its module capacity first; an over-capacity or malformed panel is
// rejected with 400 and nothing is persisted.
func HandlePanelSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("id")
		room, err := app.FindRecordById("rooms", roomID)
		if err != nil {
			return e.String(http.StatusNotFound, "Room not found")
		}

		input := panelSaveInput{}
		if err := e.BindBody(&input); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Panel name is required"})
		}

		panel := engine.PanelInstance{
			Name:       input.Name,
			ModuleSize: input.ModuleSize,
			VendorTags: input.VendorTags,
		}
		for _, s := range input.Components {
			panel.Components = append(panel.Components, engine.ComponentSlot{
				Type:           s.Type,
				Quantity:       s.Quantity,
				ModulesPerUnit: s.ModulesPerUnit,
			})
		}

		check, err := engine.ValidatePanel(panel)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		if !check.OK {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"error":              "Panel components exceed the module capacity",
				"total_modules_used": check.TotalModulesUsed,
				"module_size":        input.ModuleSize,
			})
		}

		panelsCol, err := app.FindCollectionByNameOrId("panels")
		if err != nil {
			log.Printf("panel_save: could not find panels collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(panelsCol)
		record.Set("room", room.Id)
		record.Set("name", input.Name)
		record.Set("module_size", input.ModuleSize)
		record.Set("vendor_tags", input.VendorTags)
		record.Set("components", input.Components)
		record.Set("sort_order", input.SortOrder)

		if err := app.Save(record); err != nil {
			log.Printf("panel_save: could not save panel: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"id":                 record.Id,
			"total_modules_used": check.TotalModulesUsed,
			"is_full":            check.IsFull,
		})
	}
}
