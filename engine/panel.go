package engine

import "fmt"

// ComponentSlot is one kind of control component mounted on a panel, e.g.
// two on/off rockers that take two modules each.
type ComponentSlot struct {
	Type           string
	Quantity       int
	ModulesPerUnit int
}

// PanelInstance is a wall-mounted touch panel with a fixed module-slot
// capacity. VendorTags drive vendor price resolution.
type PanelInstance struct {
	ID         string
	Name       string
	ModuleSize int
	VendorTags []string
	Components []ComponentSlot
}

// PanelCheck is the capacity verdict for a panel. OK is false when the
// mounted components exceed the panel's module size; overflow is reported,
// never silently truncated.
type PanelCheck struct {
	TotalModulesUsed int
	IsFull           bool
	OK               bool
}

var panelModuleSizes = map[int]bool{2: true, 4: true, 6: true, 8: true, 12: true}

// ValidatePanel computes the modules consumed by a panel's component slots
// and checks them against the declared size. Structurally invalid input
// (unknown panel size, negative slot values) is a ValidationError; a merely
// over-capacity panel returns OK=false with no error. Re-run this after
// every component edit, since incremental type or quantity changes can push
// a previously valid panel over capacity.
func ValidatePanel(p PanelInstance) (PanelCheck, error) {
	if !panelModuleSizes[p.ModuleSize] {
		return PanelCheck{}, &ValidationError{
			Field:  "moduleSize",
			Reason: fmt.Sprintf("%d is not a valid panel size (2, 4, 6, 8 or 12)", p.ModuleSize),
		}
	}

	total := 0
	for _, slot := range p.Components {
		if slot.Quantity < 0 {
			return PanelCheck{}, &ValidationError{Field: "components", Reason: "negative component quantity"}
		}
		if slot.ModulesPerUnit < 0 {
			return PanelCheck{}, &ValidationError{Field: "components", Reason: "negative modules per unit"}
		}
		total += slot.Quantity * slot.ModulesPerUnit
	}

	return PanelCheck{
		TotalModulesUsed: total,
		IsFull:           total == p.ModuleSize,
		OK:               total <= p.ModuleSize,
	}, nil
}
