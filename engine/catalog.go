// Package engine implements the BOQ and quotation pricing engine: catalog
// price resolution, module packing, panel capacity validation, BOQ building,
// wired-cost aggregation and totals. All functions are pure computations over
// already-fetched data; persistence stays with the caller.
package engine

import "strings"

// DefaultFallbackPrice is the documented non-zero unit price used when no
// catalog entry matches a line spec. Lines priced with it carry a fallback
// flag so they can be reviewed before a quotation is sent.
const DefaultFallbackPrice = 999.0

// PriceEntry is one row of the flat price list. Subcategory and Wattage are
// optional; an empty subcategory or zero wattage means the entry applies to
// any value of that field. Entries with a VendorTag price touch panels and
// are ignored by appliance resolution.
type PriceEntry struct {
	Category     string
	Subcategory  string
	Wattage      int
	VendorTag    string
	PricePerUnit float64
}

// Catalog is an immutable, ordered price list loaded once per pricing run.
// Entry order matters: it is the documented tie-break between equally
// specific matches.
type Catalog struct {
	Entries []PriceEntry

	// FallbackPrice overrides DefaultFallbackPrice when non-zero.
	FallbackPrice float64
}

// LineSpec identifies what an appliance line is, for price lookup.
type LineSpec struct {
	Category    string
	Subcategory string
	Wattage     int
}

// ResolvedPrice is the outcome of a price lookup. Fallback is true when no
// catalog entry matched and the default price was used.
type ResolvedPrice struct {
	UnitPrice float64
	Fallback  bool
}

func (c Catalog) fallback() ResolvedPrice {
	price := c.FallbackPrice
	if price == 0 {
		price = DefaultFallbackPrice
	}
	return ResolvedPrice{UnitPrice: price, Fallback: true}
}

// ResolvePrice finds the unit price for a line spec. An entry matches when
// its category is equal and each of its optional fields is either unset or
// equal to the spec's value. Among matches the most specific entry wins
// (most optional fields set); ties are broken by catalog order, first match
// wins. No match resolves to the fallback price, flagged.
func (c Catalog) ResolvePrice(spec LineSpec) ResolvedPrice {
	bestIdx := -1
	bestSpecificity := -1

	for i, entry := range c.Entries {
		if entry.VendorTag != "" {
			continue
		}
		if !strings.EqualFold(entry.Category, spec.Category) {
			continue
		}
		if entry.Subcategory != "" && !strings.EqualFold(entry.Subcategory, spec.Subcategory) {
			continue
		}
		if entry.Wattage != 0 && entry.Wattage != spec.Wattage {
			continue
		}

		specificity := 0
		if entry.Subcategory != "" {
			specificity++
		}
		if entry.Wattage != 0 {
			specificity++
		}
		if specificity > bestSpecificity {
			bestSpecificity = specificity
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return c.fallback()
	}
	return ResolvedPrice{UnitPrice: c.Entries[bestIdx].PricePerUnit}
}

// ResolvePanelPrice prices a touch panel by vendor tag membership: the first
// vendor-tagged entry whose tag appears in the panel's tag set wins. Absent
// a tag match, the first vendor-tagged entry in the catalog serves as the
// vendor default. Only when the catalog has no vendor pricing at all does
// the flagged fallback price apply.
func (c Catalog) ResolvePanelPrice(tags []string) ResolvedPrice {
	firstVendor := -1
	for i, entry := range c.Entries {
		if entry.VendorTag == "" {
			continue
		}
		if firstVendor < 0 {
			firstVendor = i
		}
		for _, tag := range tags {
			if strings.EqualFold(entry.VendorTag, tag) {
				return ResolvedPrice{UnitPrice: entry.PricePerUnit}
			}
		}
	}

	if firstVendor >= 0 {
		return ResolvedPrice{UnitPrice: c.Entries[firstVendor].PricePerUnit}
	}
	return c.fallback()
}
