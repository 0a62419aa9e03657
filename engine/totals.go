package engine

import "math"

// Totals is the monetary summary of a quotation snapshot.
type Totals struct {
	Subtotal   float64
	TaxPercent float64
	TaxAmount  float64
	GrandTotal float64
}

// round2 rounds to 2 decimals. Applied only at this aggregation boundary,
// never mid-computation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals sums the line items and automation cost into a subtotal,
// applies the tax percentage and returns the grand total. All three values
// come from the same immutable snapshot of inputs; issuing freezes them
// into the quotation document.
func ComputeTotals(lineItems []BOQLineItem, automationCost, taxPercent float64) Totals {
	subtotal := automationCost
	for _, item := range lineItems {
		subtotal += item.TotalPrice
	}
	subtotal = round2(subtotal)
	taxAmount := round2(subtotal * taxPercent / 100)
	return Totals{
		Subtotal:   subtotal,
		TaxPercent: taxPercent,
		TaxAmount:  taxAmount,
		GrandTotal: round2(subtotal + taxAmount),
	}
}
