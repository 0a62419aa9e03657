package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type applianceSaveInput struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Subcategory string            `json:"subcategory"`
	Wattage     int               `json:"wattage"`
	Quantity    int               `json:"quantity"`
	Metadata    map[string]string `json:"metadata"`
	SortOrder   int               `json:"sort_order"`
}

// HandleApplianceSave creates an appliance line in a room.
func HandleApplianceSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("id")
		room, err := app.FindRecordById("rooms", roomID)
		if err != nil {
			return e.String(http.StatusNotFound, "Room not found")
		}

		input := applianceSaveInput{}
		if err := e.BindBody(&input); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Category = strings.TrimSpace(input.Category)

		fieldErrors := make(map[string]string)
		if input.Name == "" {
			fieldErrors["name"] = "Appliance name is required"
		}
		if input.Category == "" {
			fieldErrors["category"] = "Category is required"
		}
		if input.Quantity < 1 {
			fieldErrors["quantity"] = "Quantity must be at least 1"
		}
		if len(fieldErrors) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": fieldErrors})
		}

		appliancesCol, err := app.FindCollectionByNameOrId("appliances")
		if err != nil {
			log.Printf("appliance_save: could not find appliances collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(appliancesCol)
		record.Set("room", room.Id)
		record.Set("name", input.Name)
		record.Set("category", input.Category)
		record.Set("subcategory", input.Subcategory)
		record.Set("wattage", input.Wattage)
		record.Set("quantity", input.Quantity)
		record.Set("metadata", input.Metadata)
		record.Set("sort_order", input.SortOrder)

		if err := app.Save(record); err != nil {
			log.Printf("appliance_save: could not save appliance: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, map[string]any{"id": record.Id})
	}
}
