package engine

import "strings"

// ChannelClass says which module family an appliance draws channels from.
type ChannelClass int

const (
	ChannelNone ChannelClass = iota
	ChannelActuator
	ChannelLighting
)

// Appliance categories with wired-channel semantics.
const (
	CategoryLights   = "Lights"
	CategoryCurtains = "Curtain & Blinds"
)

// ClassifyChannel reports the channel class of an appliance and how many
// channels one unit of it occupies. Plain on/off lights (empty subcategory
// or one containing "on/off", case-insensitive) go on actuator channels;
// any other light subcategory needs a lighting channel. Curtain motors take
// two actuator channels per unit for the open/close direction pair; the
// doubling is a fixed domain rule, confirmed with the installation team,
// not a tunable.
func ClassifyChannel(a ApplianceLine) (ChannelClass, int) {
	switch {
	case strings.EqualFold(a.Category, CategoryLights):
		sub := strings.TrimSpace(a.Subcategory)
		if sub == "" || strings.Contains(strings.ToLower(sub), "on/off") {
			return ChannelActuator, 1
		}
		return ChannelLighting, 1
	case strings.EqualFold(a.Category, CategoryCurtains):
		return ChannelActuator, 2
	}
	return ChannelNone, 0
}

// FixedComponent is a mandatory single-unit infrastructure item (processor,
// power supply, enclosure) that exists once per installation regardless of
// room count.
type FixedComponent struct {
	Name  string
	Price float64
}

// WiredCatalog bundles everything needed to cost a wired installation.
type WiredCatalog struct {
	ActuatorModules   []ModuleType
	LightingModules   []ModuleType
	Mandatory         []FixedComponent
	WirePricePerMeter float64
}

// WiredBreakdown retains every sub-total of a wired costing separately for
// display and audit; TotalCost is their sum.
type WiredBreakdown struct {
	ActuatorChannels int
	LightingChannels int
	ExtraChannels    int

	ActuatorPacking PackingResult
	LightingPacking PackingResult

	Mandatory     []FixedComponent
	MandatoryCost float64

	WireLengthMeters float64
	WiringCost       float64

	TotalCost float64
}

// AggregateWired classifies the appliances of every wired room into channel
// counts, packs actuator and lighting channels against their module
// catalogs, and adds the mandatory components and per-meter wiring cost.
// extraChannels is a manual adjustment added to the actuator count.
func AggregateWired(rooms []Room, extraChannels int, wireLengthMeters float64, catalog WiredCatalog) (WiredBreakdown, error) {
	if wireLengthMeters < 0 {
		return WiredBreakdown{}, &ValidationError{Field: "wireLengthMeters", Reason: "must not be negative"}
	}

	actuator := 0
	lighting := 0
	for _, room := range rooms {
		if room.AutomationType != AutomationWired {
			continue
		}
		for _, a := range room.Appliances {
			if a.Quantity < 1 {
				continue
			}
			class, perUnit := ClassifyChannel(a)
			channels := perUnit * a.Quantity
			switch class {
			case ChannelActuator:
				actuator += channels
			case ChannelLighting:
				lighting += channels
			}
		}
	}
	actuator += extraChannels
	if actuator < 0 {
		return WiredBreakdown{}, &ValidationError{Field: "extraChannels", Reason: "adjustment drives actuator channels negative"}
	}

	actuatorPacking, err := Pack(actuator, catalog.ActuatorModules)
	if err != nil {
		return WiredBreakdown{}, err
	}
	lightingPacking, err := Pack(lighting, catalog.LightingModules)
	if err != nil {
		return WiredBreakdown{}, err
	}

	breakdown := WiredBreakdown{
		ActuatorChannels: actuator,
		LightingChannels: lighting,
		ExtraChannels:    extraChannels,
		ActuatorPacking:  actuatorPacking,
		LightingPacking:  lightingPacking,
		Mandatory:        catalog.Mandatory,
		WireLengthMeters: wireLengthMeters,
		WiringCost:       wireLengthMeters * catalog.WirePricePerMeter,
	}
	for _, c := range catalog.Mandatory {
		breakdown.MandatoryCost += c.Price
	}
	breakdown.TotalCost = actuatorPacking.TotalCost + lightingPacking.TotalCost +
		breakdown.MandatoryCost + breakdown.WiringCost
	return breakdown, nil
}
