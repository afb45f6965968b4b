// Package validation holds the pure business-rule checks applied to
// incoming payloads before they reach persistence. Each function fails on
// the first violation with a domain validation error.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbid/auctiond/internal/errors"
)

// User checks a registration payload. Password must be at least six
// characters; the email check is deliberately shallow (contains '@' and '.').
func User(firstName, lastName, email, phone, password string) error {
	fields := []struct {
		name, value string
	}{
		{"firstName", firstName},
		{"lastName", lastName},
		{"email", email},
		{"phone", phone},
		{"password", password},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return errors.Validation(fmt.Sprintf("Missing required field: %s", f.name))
		}
	}

	if len(password) < 6 {
		return errors.Validation("Password must be at least 6 characters long")
	}

	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.Validation("Invalid email format")
	}

	return nil
}

// Auction checks an auction creation payload and returns the parsed end
// time. End times must carry a timezone offset; naive timestamps are
// rejected rather than compared against an unlike-typed now.
func Auction(title, description string, startingPrice, minimumIncrement decimal.Decimal, endTime string) (time.Time, error) {
	if strings.TrimSpace(title) == "" {
		return time.Time{}, errors.Validation("Field cannot be empty: title")
	}
	if strings.TrimSpace(description) == "" {
		return time.Time{}, errors.Validation("Field cannot be empty: description")
	}

	if !startingPrice.IsPositive() {
		return time.Time{}, errors.Validation("Starting price must be greater than 0")
	}
	if !minimumIncrement.IsPositive() {
		return time.Time{}, errors.Validation("Minimum increment must be greater than 0")
	}

	if strings.TrimSpace(endTime) == "" {
		return time.Time{}, errors.Validation("Field cannot be empty: endTime")
	}
	end, err := time.Parse(time.RFC3339, endTime)
	if err != nil {
		return time.Time{}, errors.Unprocessable("Invalid end time format")
	}
	if !end.After(time.Now()) {
		return time.Time{}, errors.Validation("End time must be in the future")
	}

	return end.UTC(), nil
}

// Bid checks a bid amount against the auction's current bid. Ties are
// rejected: only a strictly greater amount is acceptable. The declared
// minimum increment is intentionally not enforced against the delta.
func Bid(amount, currentBid decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.Validation("Bid amount must be greater than 0")
	}
	if amount.LessThanOrEqual(currentBid) {
		return errors.Validation(fmt.Sprintf("Bid must be higher than current bid ($%s)", currentBid.String()))
	}
	return nil
}
