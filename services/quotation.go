// Package services implements the operations around quotation documents:
// number allocation, issuance (freezing a priced snapshot), the status
// lifecycle, and PDF/Excel rendition of issued documents.
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

var (
	// ErrEmptyQuotation rejects issuing a document with no line items.
	ErrEmptyQuotation = errors.New("quotation has no valid line items")

	// ErrStateConflict marks an illegal status transition; the document
	// is left unchanged.
	ErrStateConflict = errors.New("illegal quotation status transition")

	// ErrAlreadySent signals the idempotent no-op of sending an already
	// sent quotation. Callers may treat it as success.
	ErrAlreadySent = errors.New("quotation already sent")

	// ErrNumberRetryExhausted means no free quotation number was found
	// within the bounded retry budget.
	ErrNumberRetryExhausted = errors.New("could not allocate a unique quotation number")
)

// SnapshotLine is one frozen row of a quotation document. Appliance and
// panel rows come from the BOQ; automation and wiring rows summarize the
// wired-cost breakdown.
type SnapshotLine struct {
	RoomName      string
	ItemType      string // appliance, panel, automation, wiring
	Description   string
	Category      string
	Quantity      float64
	UnitPrice     float64
	TotalPrice    float64
	PriceFallback bool
}

// QuotationSnapshot is the immutable input to issuance: line items plus the
// totals computed from them. Issuing copies everything; later edits to
// rooms or catalog never touch an issued document.
type QuotationSnapshot struct {
	AutomationType string
	Lines          []SnapshotLine
	Subtotal       float64
	TaxPercent     float64
	TaxAmount      float64
	GrandTotal     float64
}

const issueMaxAttempts = 5

// IssueQuotation allocates a unique quotation number, freezes the snapshot
// into quotations + quotation_line_items, and returns the new document in
// status draft. A concurrent issuance racing on the same number loses to
// the unique index and retries with a fresh number (optimistic retry, no
// lock).
func IssueQuotation(app core.App, projectID string, snapshot QuotationSnapshot, now time.Time) (*core.Record, error) {
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyQuotation
	}

	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return nil, fmt.Errorf("quotations collection: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("quotation_line_items")
	if err != nil {
		return nil, fmt.Errorf("quotation_line_items collection: %w", err)
	}

	var issued *core.Record
	for attempt := 0; attempt < issueMaxAttempts; attempt++ {
		number, err := GenerateQuotationNumber(app, now)
		if err != nil {
			return nil, err
		}

		record := core.NewRecord(quotationsCol)
		record.Set("project", projectID)
		record.Set("number", number)
		record.Set("status", "draft")
		record.Set("automation_type", snapshot.AutomationType)
		record.Set("subtotal", snapshot.Subtotal)
		record.Set("tax_percent", snapshot.TaxPercent)
		record.Set("tax_amount", snapshot.TaxAmount)
		record.Set("grand_total", snapshot.GrandTotal)

		err = app.RunInTransaction(func(txApp core.App) error {
			if err := txApp.Save(record); err != nil {
				return err
			}
			for i, line := range snapshot.Lines {
				item := core.NewRecord(itemsCol)
				item.Set("quotation", record.Id)
				item.Set("sort_order", i+1)
				item.Set("room_name", line.RoomName)
				item.Set("item_type", line.ItemType)
				item.Set("description", line.Description)
				item.Set("category", line.Category)
				item.Set("quantity", line.Quantity)
				item.Set("unit_price", line.UnitPrice)
				item.Set("total_price", line.TotalPrice)
				item.Set("price_fallback", line.PriceFallback)
				if err := txApp.Save(item); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			issued = record
			break
		}
		if !isUniqueNumberViolation(err) {
			return nil, fmt.Errorf("issue quotation: %w", err)
		}
		// lost the number race, draw again
	}

	if issued == nil {
		return nil, ErrNumberRetryExhausted
	}
	return issued, nil
}

// isUniqueNumberViolation recognizes the SQLite unique index error raised
// when two issuances race onto the same quotation number.
func isUniqueNumberViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

// TransitionQuotation applies a lifecycle action to a quotation document.
// Legal path: draft -> sent -> accepted|rejected. Sending an already sent
// document is a no-op signalled with ErrAlreadySent; every other
// out-of-order attempt fails with ErrStateConflict and leaves the document
// untouched.
func TransitionQuotation(app core.App, quotationID, action string, now time.Time) (*core.Record, error) {
	record, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return nil, fmt.Errorf("quotation %s not found: %w", quotationID, err)
	}

	status := record.GetString("status")
	switch action {
	case "send":
		if status == "sent" {
			return record, ErrAlreadySent
		}
		if status != "draft" {
			return nil, stateConflict(action, status)
		}
		record.Set("status", "sent")
		record.Set("sent_at", now)
	case "accept":
		if status != "sent" {
			return nil, stateConflict(action, status)
		}
		record.Set("status", "accepted")
		record.Set("decided_at", now)
	case "reject":
		if status != "sent" {
			return nil, stateConflict(action, status)
		}
		record.Set("status", "rejected")
		record.Set("decided_at", now)
	default:
		return nil, fmt.Errorf("unknown quotation action %q", action)
	}

	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save quotation transition: %w", err)
	}
	return record, nil
}

func stateConflict(action, status string) error {
	return fmt.Errorf("cannot %s a quotation in status %q: %w", action, status, ErrStateConflict)
}
