// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record with the given name and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("tax_percent", 18.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestRoom creates a room record linked to a project.
func CreateTestRoom(t *testing.T, app *pocketbase.PocketBase, projectID, name, automationType string, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		t.Fatalf("failed to find rooms collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("name", name)
	record.Set("automation_type", automationType)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test room: %v", err)
	}

	return record
}

// CreateTestAppliance creates an appliance record inside a room.
func CreateTestAppliance(t *testing.T, app *pocketbase.PocketBase, roomID, name, category, subcategory string, quantity int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("appliances")
	if err != nil {
		t.Fatalf("failed to find appliances collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("room", roomID)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("subcategory", subcategory)
	record.Set("quantity", quantity)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test appliance: %v", err)
	}

	return record
}

// CreateTestPanel creates a panel record inside a room. components is stored
// as the JSON slot list the engine expects.
func CreateTestPanel(t *testing.T, app *pocketbase.PocketBase, roomID, name string, moduleSize int, vendorTags []string, components []map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("panels")
	if err != nil {
		t.Fatalf("failed to find panels collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("room", roomID)
	record.Set("name", name)
	record.Set("module_size", moduleSize)
	record.Set("vendor_tags", vendorTags)
	record.Set("components", components)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test panel: %v", err)
	}

	return record
}

// CreatePriceEntry creates a price catalog entry.
func CreatePriceEntry(t *testing.T, app *pocketbase.PocketBase, category, subcategory, vendorTag string, price float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("price_entries")
	if err != nil {
		t.Fatalf("failed to find price_entries collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("category", category)
	record.Set("subcategory", subcategory)
	record.Set("vendor_tag", vendorTag)
	record.Set("price_per_unit", price)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test price entry: %v", err)
	}

	return record
}

// CreateModuleType creates a module type for the packing catalogs.
func CreateModuleType(t *testing.T, app *pocketbase.PocketBase, class, name string, capacity int, price float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("module_types")
	if err != nil {
		t.Fatalf("failed to find module_types collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("class", class)
	record.Set("name", name)
	record.Set("capacity", capacity)
	record.Set("price", price)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test module type: %v", err)
	}

	return record
}

// CreateWiredComponent creates a mandatory wired infrastructure component.
func CreateWiredComponent(t *testing.T, app *pocketbase.PocketBase, name string, price float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("wired_components")
	if err != nil {
		t.Fatalf("failed to find wired_components collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("price", price)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test wired component: %v", err)
	}

	return record
}
