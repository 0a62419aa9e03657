package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type priceDef struct {
	category     string
	subcategory  string
	wattage      int
	vendorTag    string
	pricePerUnit float64
}

type moduleDef struct {
	class    string
	name     string
	capacity int
	price    float64
}

type componentDef struct {
	name  string
	price float64
}

// Default price list mirroring the reference installation catalog. Entry
// order is meaningful: it is the resolver's tie-break.
var seedPrices = []priceDef{
	{category: "Lights", pricePerUnit: 450},
	{category: "Lights", subcategory: "ON/OFF", pricePerUnit: 450},
	{category: "Lights", subcategory: "Dimmer", pricePerUnit: 1250},
	{category: "Lights", subcategory: "RGB", pricePerUnit: 1850},
	{category: "Lights", subcategory: "RGB", wattage: 24, pricePerUnit: 2400},
	{category: "Lights", subcategory: "Tunable White", pricePerUnit: 1600},
	{category: "Curtain & Blinds", pricePerUnit: 8500},
	{category: "Fans", pricePerUnit: 3200},
	{category: "Wiring", pricePerUnit: 18}, // per meter
	{category: "Panel", vendorTag: "lumio", pricePerUnit: 14500},
	{category: "Panel", vendorTag: "tisio", pricePerUnit: 21000},
	{category: "Panel", vendorTag: "zenn", pricePerUnit: 17500},
}

var seedModules = []moduleDef{
	{class: "actuator", name: "Actuator 8ch", capacity: 8, price: 9800},
	{class: "actuator", name: "Actuator 16ch", capacity: 16, price: 16500},
	{class: "lighting", name: "Lighting Bus 64ch", capacity: 64, price: 42000},
	{class: "lighting", name: "Lighting Bus 128ch", capacity: 128, price: 68000},
}

var seedComponents = []componentDef{
	{name: "Automation Processor", price: 58000},
	{name: "DIN Rail Power Supply", price: 7200},
	{name: "Distribution Enclosure", price: 12500},
}

// Seed inserts the default price catalog, module types and mandatory wired
// components when their collections are empty. Safe to call on every start.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedRecords(app, "price_entries", len(seedPrices), func(record *core.Record, i int) {
		p := seedPrices[i]
		record.Set("category", p.category)
		record.Set("subcategory", p.subcategory)
		record.Set("wattage", p.wattage)
		record.Set("vendor_tag", p.vendorTag)
		record.Set("price_per_unit", p.pricePerUnit)
		record.Set("sort_order", i+1)
	}); err != nil {
		return err
	}

	if err := seedRecords(app, "module_types", len(seedModules), func(record *core.Record, i int) {
		m := seedModules[i]
		record.Set("class", m.class)
		record.Set("name", m.name)
		record.Set("capacity", m.capacity)
		record.Set("price", m.price)
		record.Set("sort_order", i+1)
	}); err != nil {
		return err
	}

	return seedRecords(app, "wired_components", len(seedComponents), func(record *core.Record, i int) {
		c := seedComponents[i]
		record.Set("name", c.name)
		record.Set("price", c.price)
		record.Set("sort_order", i+1)
	})
}

// seedRecords inserts n records into a collection via fill, skipping the
// collection entirely if it already has data.
func seedRecords(app *pocketbase.PocketBase, collectionName string, n int, fill func(*core.Record, int)) error {
	col, err := app.FindCollectionByNameOrId(collectionName)
	if err != nil {
		return fmt.Errorf("seed: collection %q not found: %w", collectionName, err)
	}

	existing, err := app.FindRecordsByFilter(collectionName, "id != ''", "", 1, 0)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		record := core.NewRecord(col)
		fill(record, i)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save %s record: %w", collectionName, err)
		}
	}
	return nil
}
