package service

import (
	"strings"
	"time"

	"gamerental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

const msgFieldRequired = "This field is required."

// parseDate normalizes a date string, returning a field error when it does
// not match the YYYY-MM-DD layout.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewFieldError(field, "Date must use the YYYY-MM-DD format.")
	}
	return t, nil
}

// validateAmount checks a decimal money string: non-negative, at most two
// fraction digits, fitting NUMERIC(10,2).
func validateAmount(value string) error {
	invalid := domain.NewFieldError("amount", "Amount must be a non-negative decimal with at most two decimal places.")

	whole, frac, hasFrac := strings.Cut(value, ".")
	if whole == "" || len(whole) > 10 {
		return invalid
	}
	for _, c := range whole {
		if c < '0' || c > '9' {
			return invalid
		}
	}
	if hasFrac {
		if frac == "" || len(frac) > 2 {
			return invalid
		}
		for _, c := range frac {
			if c < '0' || c > '9' {
				return invalid
			}
		}
	}
	return nil
}
