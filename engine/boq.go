package engine

// AutomationType distinguishes rooms wired for centralized actuator modules
// from rooms using wireless touch panels.
type AutomationType string

const (
	AutomationWired    AutomationType = "wired"
	AutomationWireless AutomationType = "wireless"
)

// ApplianceLine is one planned appliance inside a room, read-only for the
// engine. Metadata carries free-form planner notes and never affects
// pricing.
type ApplianceLine struct {
	ID          string
	Name        string
	Category    string
	Subcategory string
	Wattage     int
	Quantity    int
	Metadata    map[string]string
}

// Room groups appliances and (for wireless rooms) touch panels. Panels on a
// wired room are ignored; wired rooms are costed by channel counting
// instead.
type Room struct {
	ID             string
	Name           string
	AutomationType AutomationType
	Appliances     []ApplianceLine
	Panels         []PanelInstance
}

// ItemType says what kind of record produced a BOQ line.
type ItemType string

const (
	ItemAppliance ItemType = "appliance"
	ItemPanel     ItemType = "panel"
)

// BOQLineItem is one priced row of the bill of quantities.
// TotalPrice is exactly UnitPrice * Quantity.
type BOQLineItem struct {
	RoomID        string
	RoomName      string
	ItemType      ItemType
	Name          string
	Category      string
	Quantity      int
	UnitPrice     float64
	TotalPrice    float64
	PriceFallback bool
}

// BOQWarning records a malformed input line that was skipped instead of
// aborting the whole build.
type BOQWarning struct {
	RoomID   string
	RoomName string
	Item     string
	Reason   string
}

// BOQResult is the built bill of quantities plus any skipped-line warnings.
type BOQResult struct {
	LineItems []BOQLineItem
	Warnings  []BOQWarning
}

// FallbackCount reports how many lines were priced with the fallback price
// and need review before the quotation goes out.
func (r BOQResult) FallbackCount() int {
	n := 0
	for _, item := range r.LineItems {
		if item.PriceFallback {
			n++
		}
	}
	return n
}

// BuildBOQ walks rooms in the order supplied and emits one priced line per
// appliance, then one per panel (wireless rooms only, priced as a unit),
// preserving each room's original array order. The ordering is part of the
// contract: regenerating from the same input must not reshuffle the
// document. Lines missing a name or category, or with a quantity below one,
// are skipped with a warning.
func BuildBOQ(rooms []Room, catalog Catalog) BOQResult {
	var result BOQResult

	warn := func(room Room, item, reason string) {
		result.Warnings = append(result.Warnings, BOQWarning{
			RoomID:   room.ID,
			RoomName: room.Name,
			Item:     item,
			Reason:   reason,
		})
	}

	for _, room := range rooms {
		for _, a := range room.Appliances {
			if a.Name == "" || a.Category == "" {
				warn(room, a.ID, "appliance missing name or category")
				continue
			}
			if a.Quantity < 1 {
				warn(room, a.Name, "appliance quantity below one")
				continue
			}
			price := catalog.ResolvePrice(LineSpec{
				Category:    a.Category,
				Subcategory: a.Subcategory,
				Wattage:     a.Wattage,
			})
			result.LineItems = append(result.LineItems, BOQLineItem{
				RoomID:        room.ID,
				RoomName:      room.Name,
				ItemType:      ItemAppliance,
				Name:          a.Name,
				Category:      a.Category,
				Quantity:      a.Quantity,
				UnitPrice:     price.UnitPrice,
				TotalPrice:    price.UnitPrice * float64(a.Quantity),
				PriceFallback: price.Fallback,
			})
		}

		if room.AutomationType != AutomationWireless {
			continue
		}
		for _, p := range room.Panels {
			if p.Name == "" {
				warn(room, p.ID, "panel missing name")
				continue
			}
			price := catalog.ResolvePanelPrice(p.VendorTags)
			result.LineItems = append(result.LineItems, BOQLineItem{
				RoomID:        room.ID,
				RoomName:      room.Name,
				ItemType:      ItemPanel,
				Name:          p.Name,
				Category:      "Touch Panel",
				Quantity:      1, // a panel is priced as a unit, not per module
				UnitPrice:     price.UnitPrice,
				TotalPrice:    price.UnitPrice,
				PriceFallback: price.Fallback,
			})
		}
	}

	return result
}
