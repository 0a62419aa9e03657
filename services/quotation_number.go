package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"
)

// Quotation numbers look like HAI-QT-20260827-K4N2TQ: fixed prefix, issue
// date, random suffix. The suffix alphabet drops easily-confused glyphs
// (0/O, 1/I/L) because the number is read out to clients over the phone.
const (
	quotationNumberPrefix   = "HAI-QT"
	quotationSuffixAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	quotationSuffixLength   = 6
	numberMaxAttempts       = 5
)

// formatQuotationNumber constructs the number string from its components.
func formatQuotationNumber(date time.Time, suffix string) string {
	return fmt.Sprintf("%s-%s-%s", quotationNumberPrefix, date.Format("20060102"), suffix)
}

// GenerateQuotationNumber allocates a candidate quotation number and
// confirms it is unused. A random draw can collide, so generation retries a
// bounded number of times before giving up with ErrNumberRetryExhausted.
// The uniqueness check here is advisory; the unique index on
// quotations.number is the real arbiter when two issuances race.
func GenerateQuotationNumber(app core.App, now time.Time) (string, error) {
	for attempt := 0; attempt < numberMaxAttempts; attempt++ {
		suffix := security.RandomStringWithAlphabet(quotationSuffixLength, quotationSuffixAlphabet)
		candidate := formatQuotationNumber(now, suffix)

		existing, err := app.FindRecordsByFilter(
			"quotations",
			"number = {:number}",
			"",
			1,
			0,
			map[string]any{"number": candidate},
		)
		if err != nil {
			return "", fmt.Errorf("quotation number lookup: %w", err)
		}
		if len(existing) == 0 {
			return candidate, nil
		}
	}
	return "", ErrNumberRetryExhausted
}
