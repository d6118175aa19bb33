package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// DebitPeriod is the interval between two write-offs of a regular payment.
// On the wire it is written as digits followed by a unit suffix: "15m", "24h", "7d".
type DebitPeriod time.Duration

func ParseDebitPeriod(s string) (DebitPeriod, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if len(v) < 2 { //nolint:mnd
		return 0, fmt.Errorf("%w: unknown time format: %q", ErrInvalidArgument, s)
	}

	var unit time.Duration

	switch v[len(v)-1] {
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	case 'd':
		unit = day
	default:
		return 0, fmt.Errorf("%w: unknown time format: %q", ErrInvalidArgument, s)
	}

	digits := v[:len(v)-1]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: unknown time format: %q", ErrInvalidArgument, s)
		}
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %s", ErrInvalidArgument, s, err)
	}

	if amount > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: debit period %q is too long", ErrInvalidArgument, s)
	}

	return DebitPeriod(time.Duration(amount) * unit), nil
}

func (p DebitPeriod) Duration() time.Duration {
	return time.Duration(p)
}

// String formats the period with the largest unit that divides it exactly.
// Sub-minute remainders are truncated.
func (p DebitPeriod) String() string {
	d := time.Duration(p)

	switch {
	case d != 0 && d%day == 0:
		return strconv.FormatInt(int64(d/day), 10) + "d"
	case d != 0 && d%time.Hour == 0:
		return strconv.FormatInt(int64(d/time.Hour), 10) + "h"
	default:
		return strconv.FormatInt(int64(d/time.Minute), 10) + "m"
	}
}

func (p DebitPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *DebitPeriod) UnmarshalJSON(b []byte) error {
	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return fmt.Errorf("debit period must be a string: %w", err)
	}

	parsed, err := ParseDebitPeriod(s)
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
