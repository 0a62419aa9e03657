package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homequote/testhelpers"
)

func postJSON(path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func TestHandlePanelSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	project := testhelpers.CreateTestProject(t, app, "Panel Project")
	room := testhelpers.CreateTestRoom(t, app, project.Id, "Bedroom", "wireless", 1)

	req, rec := postJSON("/rooms/"+room.Id+"/panels", `{
		"name": "Bedside Panel",
		"module_size": 4,
		"vendor_tags": ["lumio"],
		"components": [
			{"type": "switch", "quantity": 2, "modules_per_unit": 1},
			{"type": "dimmer", "quantity": 1, "modules_per_unit": 2}
		]
	}`)
	req.SetPathValue("id", room.Id)

	if err := HandlePanelSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeJSONBody(t, rec)
	if got := body["total_modules_used"].(float64); got != 4 {
		t.Errorf("total_modules_used = %v, want 4", got)
	}
	if got := body["is_full"].(bool); !got {
		t.Error("expected is_full for an exactly-full panel")
	}

	panels, err := app.FindRecordsByFilter("panels", "room = {:room}", "", 0, 0, map[string]any{"room": room.Id})
	if err != nil || len(panels) != 1 {
		t.Fatalf("expected 1 persisted panel, got %d (err %v)", len(panels), err)
	}
}

func TestHandlePanelSave_OverCapacityRejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	project := testhelpers.CreateTestProject(t, app, "Overfull Project")
	room := testhelpers.CreateTestRoom(t, app, project.Id, "Hall", "wireless", 1)

	req, rec := postJSON("/rooms/"+room.Id+"/panels", `{
		"name": "Overfull Panel",
		"module_size": 2,
		"components": [
			{"type": "switch", "quantity": 3, "modules_per_unit": 1}
		]
	}`)
	req.SetPathValue("id", room.Id)

	if err := HandlePanelSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}

	panels, _ := app.FindRecordsByFilter("panels", "room = {:room}", "", 0, 0, map[string]any{"room": room.Id})
	if len(panels) != 0 {
		t.Errorf("rejected panel was persisted anyway (%d records)", len(panels))
	}
}

func TestHandlePanelSave_InvalidModuleSize(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	project := testhelpers.CreateTestProject(t, app, "Bad Size Project")
	room := testhelpers.CreateTestRoom(t, app, project.Id, "Hall", "wireless", 1)

	req, rec := postJSON("/rooms/"+room.Id+"/panels", `{"name": "Odd Panel", "module_size": 5}`)
	req.SetPathValue("id", room.Id)

	if err := HandlePanelSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePanelSave_RoomNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req, rec := postJSON("/rooms/missing/panels", `{"name": "Panel", "module_size": 4}`)
	req.SetPathValue("id", "missing")

	if err := HandlePanelSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleApplianceSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	project := testhelpers.CreateTestProject(t, app, "Appliance Project")
	room := testhelpers.CreateTestRoom(t, app, project.Id, "Kitchen", "wired", 1)

	req, rec := postJSON("/rooms/"+room.Id+"/appliances", `{
		"name": "Downlight",
		"category": "Lights",
		"subcategory": "Dimmer",
		"wattage": 12,
		"quantity": 6,
		"metadata": {"mount": "ceiling"}
	}`)
	req.SetPathValue("id", room.Id)

	if err := HandleApplianceSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeJSONBody(t, rec)
	record, err := app.FindRecordById("appliances", body["id"].(string))
	if err != nil {
		t.Fatalf("saved appliance not found: %v", err)
	}
	if got := record.GetString("subcategory"); got != "Dimmer" {
		t.Errorf("subcategory = %q, want Dimmer", got)
	}
	if got := int(record.GetFloat("quantity")); got != 6 {
		t.Errorf("quantity = %d, want 6", got)
	}
}

func TestHandleApplianceSave_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"category": "Lights", "quantity": 1}`},
		{"missing category", `{"name": "Downlight", "quantity": 1}`},
		{"zero quantity", `{"name": "Downlight", "category": "Lights", "quantity": 0}`},
		{"negative quantity", `{"name": "Downlight", "category": "Lights", "quantity": -2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			project := testhelpers.CreateTestProject(t, app, "Validation "+tt.name)
			room := testhelpers.CreateTestRoom(t, app, project.Id, "Kitchen", "wired", 1)

			req, rec := postJSON("/rooms/"+room.Id+"/appliances", tt.body)
			req.SetPathValue("id", room.Id)

			if err := HandleApplianceSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}

			appliances, _ := app.FindRecordsByFilter("appliances", "room = {:room}", "", 0, 0, map[string]any{"room": room.Id})
			if len(appliances) != 0 {
				t.Errorf("invalid appliance was persisted (%d records)", len(appliances))
			}
		})
	}
}
