package engine

import "testing"

func testCatalog() Catalog {
	return Catalog{Entries: []PriceEntry{
		{Category: "Lights", PricePerUnit: 50},
		{Category: "Lights", Subcategory: "RGB", PricePerUnit: 90},
		{Category: "Lights", Subcategory: "RGB", Wattage: 24, PricePerUnit: 120},
		{Category: "Fans", Wattage: 75, PricePerUnit: 1800},
		{Category: "Panel", VendorTag: "lumio", PricePerUnit: 4500},
		{Category: "Panel", VendorTag: "tisio", PricePerUnit: 5200},
	}}
}

func TestResolvePrice(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name         string
		spec         LineSpec
		expectPrice  float64
		expectFlag   bool
	}{
		{"category only", LineSpec{Category: "Lights"}, 50, false},
		{"more specific subcategory wins", LineSpec{Category: "Lights", Subcategory: "RGB"}, 90, false},
		{"subcategory plus wattage wins", LineSpec{Category: "Lights", Subcategory: "RGB", Wattage: 24}, 120, false},
		{"wattage without entry falls back to generic", LineSpec{Category: "Lights", Subcategory: "Dimmer", Wattage: 10}, 50, false},
		{"wattage constrained entry", LineSpec{Category: "Fans", Wattage: 75}, 1800, false},
		{"wattage mismatch skips entry", LineSpec{Category: "Fans", Wattage: 60}, DefaultFallbackPrice, true},
		{"unknown category uses fallback", LineSpec{Category: "Sauna"}, DefaultFallbackPrice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ResolvePrice(tt.spec)
			if got.UnitPrice != tt.expectPrice {
				t.Errorf("ResolvePrice(%+v).UnitPrice = %v, want %v", tt.spec, got.UnitPrice, tt.expectPrice)
			}
			if got.Fallback != tt.expectFlag {
				t.Errorf("ResolvePrice(%+v).Fallback = %v, want %v", tt.spec, got.Fallback, tt.expectFlag)
			}
		})
	}
}

func TestResolvePrice_Deterministic(t *testing.T) {
	catalog := testCatalog()
	spec := LineSpec{Category: "Lights", Subcategory: "RGB"}

	first := catalog.ResolvePrice(spec)
	for i := 0; i < 50; i++ {
		if got := catalog.ResolvePrice(spec); got != first {
			t.Fatalf("resolution not deterministic: got %+v then %+v", first, got)
		}
	}
}

func TestResolvePrice_TieBrokenByCatalogOrder(t *testing.T) {
	// Two equally specific entries; the earlier one must win. This is a
	// defined tie-break, not incidental iteration order.
	catalog := Catalog{Entries: []PriceEntry{
		{Category: "Lights", Subcategory: "Strip", PricePerUnit: 70},
		{Category: "Lights", Subcategory: "Strip", PricePerUnit: 85},
	}}

	got := catalog.ResolvePrice(LineSpec{Category: "Lights", Subcategory: "Strip"})
	if got.UnitPrice != 70 {
		t.Errorf("expected first equally specific entry to win (70), got %v", got.UnitPrice)
	}
}

func TestResolvePrice_MoreSpecificEntryOnlyAffectsItsMatches(t *testing.T) {
	base := Catalog{Entries: []PriceEntry{{Category: "Lights", PricePerUnit: 50}}}
	extended := Catalog{Entries: append(append([]PriceEntry{}, base.Entries...),
		PriceEntry{Category: "Lights", Subcategory: "RGB", PricePerUnit: 90})}

	plain := LineSpec{Category: "Lights", Subcategory: "Spot"}
	if base.ResolvePrice(plain) != extended.ResolvePrice(plain) {
		t.Error("adding an RGB entry changed pricing for a non-RGB light")
	}
	rgb := LineSpec{Category: "Lights", Subcategory: "RGB"}
	if got := extended.ResolvePrice(rgb).UnitPrice; got != 90 {
		t.Errorf("RGB light = %v, want 90", got)
	}
}

func TestResolvePanelPrice(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name        string
		tags        []string
		expectPrice float64
		expectFlag  bool
	}{
		{"tag match", []string{"tisio"}, 5200, false},
		{"first matching entry wins", []string{"tisio", "lumio"}, 4500, false},
		{"no tag match falls back to first vendor entry", []string{"unknown"}, 4500, false},
		{"nil tags fall back to first vendor entry", nil, 4500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ResolvePanelPrice(tt.tags)
			if got.UnitPrice != tt.expectPrice || got.Fallback != tt.expectFlag {
				t.Errorf("ResolvePanelPrice(%v) = %+v, want price %v flag %v",
					tt.tags, got, tt.expectPrice, tt.expectFlag)
			}
		})
	}

	t.Run("no vendor pricing at all", func(t *testing.T) {
		empty := Catalog{Entries: []PriceEntry{{Category: "Lights", PricePerUnit: 50}}}
		got := empty.ResolvePanelPrice([]string{"lumio"})
		if !got.Fallback || got.UnitPrice != DefaultFallbackPrice {
			t.Errorf("expected flagged fallback, got %+v", got)
		}
	})
}

func TestResolvePrice_CatalogFallbackOverride(t *testing.T) {
	catalog := Catalog{FallbackPrice: 750}
	got := catalog.ResolvePrice(LineSpec{Category: "Anything"})
	if got.UnitPrice != 750 || !got.Fallback {
		t.Errorf("expected flagged override price 750, got %+v", got)
	}
}
