package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type PlanID string

// Recurrence is the billing cadence of a plan.
type Recurrence string

const (
	RecurrenceWeekly       Recurrence = "WEEKLY"
	RecurrenceMonthly      Recurrence = "MONTHLY"
	RecurrenceQuarterly    Recurrence = "QUARTERLY"
	RecurrenceSemiAnnually Recurrence = "SEMI_ANNUALLY"
	RecurrenceAnnually     Recurrence = "ANNUALLY"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceSemiAnnually, RecurrenceAnnually:
		return true
	default:
		return false
	}
}

func (r Recurrence) DisplayName() string {
	switch r {
	case RecurrenceWeekly:
		return "Weekly"
	case RecurrenceMonthly:
		return "Monthly"
	case RecurrenceQuarterly:
		return "Quarterly"
	case RecurrenceSemiAnnually:
		return "Semi-annually"
	case RecurrenceAnnually:
		return "Annually"
	default:
		return string(r)
	}
}

// ParseRecurrence accepts the wire form ("MONTHLY") case-insensitively,
// with "-" treated as "_" so CLI input like "semi-annually" works.
func ParseRecurrence(s string) (Recurrence, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	r := Recurrence(normalized)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecurrence, s)
	}
	return r, nil
}

// Plan is a subscription offering with a price and billing recurrence.
type Plan struct {
	ID                  PlanID
	Name                string
	Description         string
	Price               decimal.Decimal
	Recurrence          Recurrence
	DurationDays        int
	DurationDescription string
	Active              bool
}
