package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvisoryResult is the recommendation produced for one capital/risk request
// Owned by the request, never shared or mutated once created
type AdvisoryResult struct {
	ID            uuid.UUID
	Capital       decimal.Decimal
	Risk          RiskTier
	Profile       ProfileName
	ProfileID     uuid.UUID
	Allocation    Allocation
	Justification string
}

// Validate ensures the advisory result adheres to domain rules
func (r *AdvisoryResult) Validate() error {
	if !r.Capital.IsPositive() {
		return fmt.Errorf("%w: capital must be positive", ErrInvalidInput)
	}
	if r.Justification == "" {
		return errors.New("advisory result must have a justification")
	}
	return r.Allocation.Validate()
}

// ParseCapital parses a user-entered amount
// Both decimal point and decimal comma are accepted, blanks are ignored ("5 000,50")
func ParseCapital(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\t':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: capital is required", ErrInvalidInput)
	}

	capital, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: capital %q is not a number", ErrInvalidInput, s)
	}

	if !capital.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: capital must be positive", ErrInvalidInput)
	}

	return capital, nil
}
