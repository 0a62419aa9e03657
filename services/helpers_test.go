package services

import "bytes"

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func exportFixture() *QuotationExportData {
	return &QuotationExportData{
		CompanyName:    "HomeAuto Integrations",
		ProjectName:    "Skyline Apartment",
		ClientName:     "A. Sharma",
		Number:         "HAI-QT-20260827-K4N2TQ",
		Status:         "draft",
		CreatedDate:    "27 Aug 2026",
		AutomationType: "wired",
		Lines: []QuotationExportLine{
			{SINo: 1, RoomName: "Living Room", ItemType: "appliance", Description: "RGB Strip", Category: "Lights", Quantity: 3, UnitPrice: 1850, TotalPrice: 5550},
			{SINo: 2, RoomName: "Living Room", ItemType: "appliance", Description: "Mystery Gadget", Category: "Gadgets", Quantity: 1, UnitPrice: 999, TotalPrice: 999, PriceFallback: true},
			{SINo: 3, ItemType: "automation", Description: "Actuator 16ch x1", Quantity: 1, UnitPrice: 16500, TotalPrice: 16500},
		},
		Subtotal:      23049,
		TaxPercent:    18,
		TaxAmount:     4148.82,
		GrandTotal:    27197.82,
		FallbackCount: 1,
	}
}
