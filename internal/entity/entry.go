package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type EntryStatus string

const (
	EntryStatusActive     EntryStatus = "A"
	EntryStatusStornovana EntryStatus = "S" // reversed
)

func (s EntryStatus) String() string {
	return string(s)
}

func (s EntryStatus) Validate() error {
	switch s {
	case EntryStatusActive, EntryStatusStornovana:
		return nil
	default:
		return fmt.Errorf("%w: invalid status: %q. Allowed values: 'A' (Active) or 'S' (Stornovana)",
			ErrInvalidArgument, string(s))
	}
}

// EntriesPayment is a single debit made under a regular payment.
type EntriesPayment struct {
	ID               uuid.UUID
	RegularPaymentID uuid.UUID
	DateOfPayment    time.Time
	Amount           decimal.Decimal
	Status           EntryStatus
}

// WriteOffDue reports whether a new entry must be debited at now.
// The first write-off is always due; afterwards a write-off is due only
// strictly after the latest payment date plus the debit period.
func WriteOffDue(period DebitPeriod, entries []EntriesPayment, now time.Time) bool {
	if len(entries) == 0 {
		return true
	}

	last := entries[0].DateOfPayment
	for _, e := range entries[1:] {
		if e.DateOfPayment.After(last) {
			last = e.DateOfPayment
		}
	}

	return now.After(last.Add(period.Duration()))
}
