package engine

import (
	"math"
	"strings"
	"testing"
)

func actuatorCatalog() []ModuleType {
	return []ModuleType{
		{Name: "Actuator 8ch", Capacity: 8, Price: 100},
		{Name: "Actuator 16ch", Capacity: 16, Price: 180},
	}
}

func TestPack_ZeroChannels(t *testing.T) {
	result, err := Pack(0, actuatorCatalog())
	if err != nil {
		t.Fatalf("Pack(0) returned error: %v", err)
	}
	if len(result.Modules) != 0 || result.TotalCost != 0 {
		t.Errorf("Pack(0) = %+v, want empty result with zero cost", result)
	}
}

func TestPack_NegativeChannels(t *testing.T) {
	if _, err := Pack(-1, actuatorCatalog()); err == nil {
		t.Error("Pack(-1) should return a validation error")
	}
}

func TestPack_EmptyCatalog(t *testing.T) {
	if _, err := Pack(5, nil); err == nil {
		t.Error("Pack with no module types should return a validation error")
	}
}

func TestPack_PrefersCheaperLargeModule(t *testing.T) {
	// 10 on/off lights + 2 curtains (4 channels) = 14 required.
	// One 16-channel module at 180 beats two 8-channel modules at 200.
	result, err := Pack(14, actuatorCatalog())
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	if result.TotalCost != 180 {
		t.Errorf("TotalCost = %v, want 180", result.TotalCost)
	}
	if len(result.Modules) != 1 || result.Modules[0].Name != "Actuator 16ch" || result.Modules[0].Quantity != 1 {
		t.Errorf("Modules = %+v, want one Actuator 16ch", result.Modules)
	}
}

func TestPack_Justification(t *testing.T) {
	result, err := Pack(14, actuatorCatalog())
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	for _, frag := range []string{"Actuator 16ch", "14", "180"} {
		if !strings.Contains(result.Justification, frag) {
			t.Errorf("justification %q missing %q", result.Justification, frag)
		}
	}
}

// bruteForceTwoSize enumerates every (small, large) count pair that covers
// the requirement and returns the minimum cost. Used as the optimality
// oracle for the DP.
func bruteForceTwoSize(required int, small, large ModuleType) float64 {
	if required == 0 {
		return 0
	}
	best := math.Inf(1)
	maxLarge := required/large.Capacity + 1
	for nl := 0; nl <= maxLarge; nl++ {
		remaining := required - nl*large.Capacity
		ns := 0
		if remaining > 0 {
			ns = (remaining + small.Capacity - 1) / small.Capacity
		}
		cost := float64(nl)*large.Price + float64(ns)*small.Price
		if cost < best {
			best = cost
		}
	}
	return best
}

func TestPack_OptimalAgainstBruteForce(t *testing.T) {
	catalog := actuatorCatalog()
	small, large := catalog[0], catalog[1]

	for required := 0; required <= 500; required++ {
		result, err := Pack(required, catalog)
		if err != nil {
			t.Fatalf("Pack(%d) returned error: %v", required, err)
		}
		if result.TotalCapacity < required {
			t.Fatalf("Pack(%d) capacity %d does not cover requirement", required, result.TotalCapacity)
		}
		want := bruteForceTwoSize(required, small, large)
		if math.Abs(result.TotalCost-want) > 1e-6 {
			t.Fatalf("Pack(%d) cost %v, brute force found %v", required, result.TotalCost, want)
		}
	}
}

func TestPack_Monotonic(t *testing.T) {
	catalog := actuatorCatalog()
	prev := 0.0
	for required := 0; required <= 500; required++ {
		result, err := Pack(required, catalog)
		if err != nil {
			t.Fatalf("Pack(%d) returned error: %v", required, err)
		}
		if result.TotalCost < prev {
			t.Fatalf("cost decreased from %v to %v at %d channels", prev, result.TotalCost, required)
		}
		prev = result.TotalCost
	}
}

func TestPack_TieBreakFewerModules(t *testing.T) {
	// 160 = 80+80 = 2 modules at 200, or 100*1 + 60*1 = 2, or... set up an
	// exact cost tie: 16ch at 200 vs two 8ch at 100 each. Same cost, the
	// single larger module must win.
	catalog := []ModuleType{
		{Name: "Small", Capacity: 8, Price: 100},
		{Name: "Large", Capacity: 16, Price: 200},
	}
	result, err := Pack(16, catalog)
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	total := 0
	for _, m := range result.Modules {
		total += m.Quantity
	}
	if total != 1 {
		t.Errorf("expected a single module on cost tie, got %+v", result.Modules)
	}
}

func TestPack_GreedyWouldFail(t *testing.T) {
	// Largest-first greedy picks one 8ch (90) then one 6ch (50) = 140 for
	// 12 channels; the optimum is two 6ch at 100. The DP must find it.
	catalog := []ModuleType{
		{Name: "6ch", Capacity: 6, Price: 50},
		{Name: "8ch", Capacity: 8, Price: 90},
	}
	result, err := Pack(12, catalog)
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	if result.TotalCost != 100 {
		t.Errorf("TotalCost = %v, want 100 (two 6ch modules)", result.TotalCost)
	}
}

func TestPack_ThreeSizes(t *testing.T) {
	// A third size must not break optimality: covering 20 channels the
	// cheapest way is 64ch? No — capacities 4 (30), 10 (60), 64 (300):
	// two 10ch at 120 beats five 4ch at 150 and one 64ch at 300.
	catalog := []ModuleType{
		{Name: "4ch", Capacity: 4, Price: 30},
		{Name: "10ch", Capacity: 10, Price: 60},
		{Name: "64ch", Capacity: 64, Price: 300},
	}
	result, err := Pack(20, catalog)
	if err != nil {
		t.Fatalf("Pack returned error: %v", err)
	}
	if result.TotalCost != 120 {
		t.Errorf("TotalCost = %v, want 120", result.TotalCost)
	}
}
