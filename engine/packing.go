package engine

import (
	"fmt"
	"strings"
)

// ModuleType is a fixed-capacity hardware module with a unit price, e.g. an
// 8-channel actuator or a 64-channel lighting module.
type ModuleType struct {
	Name     string
	Capacity int
	Price    float64
}

// ModuleLine is a chosen module type with the quantity to install.
type ModuleLine struct {
	ModuleType
	Quantity int
}

// PackingResult describes a minimum-cost covering of a required channel
// count. TotalCapacity is always >= the requested channels.
type PackingResult struct {
	Modules       []ModuleLine
	TotalCost     float64
	TotalCapacity int

	// Justification is a human-readable audit line naming the chosen
	// sizes, counts and cost.
	Justification string
}

// packCostEps absorbs float noise when comparing candidate costs so the
// fewer-modules tie-break actually fires on equal-cost coverings.
const packCostEps = 1e-9

// Pack finds the cheapest combination of modules whose total capacity covers
// the required channel count. It runs a dynamic program over the channel
// count (an unbounded covering knapsack), so the result is a true optimum
// for any number of module sizes, not a greedy approximation. Equal-cost
// coverings prefer fewer total modules.
func Pack(required int, catalog []ModuleType) (PackingResult, error) {
	if required < 0 {
		return PackingResult{}, &ValidationError{Field: "requiredChannels", Reason: "must not be negative"}
	}
	if required == 0 {
		return PackingResult{Justification: "no channels required"}, nil
	}

	var usable []ModuleType
	for _, m := range catalog {
		if m.Capacity > 0 {
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		return PackingResult{}, &ValidationError{Field: "moduleCatalog", Reason: "no module type with positive capacity"}
	}

	// best[c] is the cheapest way to cover at least c channels.
	type cell struct {
		cost   float64
		count  int
		choice int
	}
	best := make([]cell, required+1)
	for c := 1; c <= required; c++ {
		best[c] = cell{choice: -1}
		for i, m := range usable {
			prev := c - m.Capacity
			if prev < 0 {
				prev = 0
			}
			cost := best[prev].cost + m.Price
			count := best[prev].count + 1
			switch {
			case best[c].choice < 0,
				cost < best[c].cost-packCostEps,
				cost < best[c].cost+packCostEps && count < best[c].count:
				best[c] = cell{cost: cost, count: count, choice: i}
			}
		}
	}

	counts := make([]int, len(usable))
	for c := required; c > 0; {
		i := best[c].choice
		counts[i]++
		c -= usable[i].Capacity
	}

	var result PackingResult
	for i, m := range usable {
		if counts[i] == 0 {
			continue
		}
		result.Modules = append(result.Modules, ModuleLine{ModuleType: m, Quantity: counts[i]})
		result.TotalCost += float64(counts[i]) * m.Price
		result.TotalCapacity += counts[i] * m.Capacity
	}
	result.Justification = justifyPacking(required, result)
	return result, nil
}

func justifyPacking(required int, r PackingResult) string {
	parts := make([]string, 0, len(r.Modules))
	for _, m := range r.Modules {
		parts = append(parts, fmt.Sprintf("%d x %s (%d ch @ %.2f)", m.Quantity, m.Name, m.Capacity, m.Price))
	}
	return fmt.Sprintf("%s covering %d required channels with capacity %d at cost %.2f",
		strings.Join(parts, " + "), required, r.TotalCapacity, r.TotalCost)
}
