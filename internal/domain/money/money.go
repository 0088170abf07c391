package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid money amount")
	ErrNegative      = errors.New("money cannot be negative")
	ErrInvalidRate   = errors.New("rate must be between 0 and 100 percent")
)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegative
	}
	return Money{cents: cents}, nil
}

func MustFromCents(cents int64) Money {
	m, err := FromCents(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse accepts "120", "120.5" or "120.50".
func Parse(s string) (Money, error) {
	cents, err := parseFixed2(s)
	if err != nil {
		return Money{}, err
	}
	return FromCents(cents)
}

func (m Money) Cents() int64 { return m.cents }
func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// ApplyRate returns m * rate rounded half up to the cent.
func (m Money) ApplyRate(r Rate) Money {
	return Money{cents: (m.cents*r.bps + 5000) / 10000}
}

func (m Money) String() string {
	return formatFixed2(m.cents)
}

// Rate is a percentage with two decimals held as basis points (10.00% == 1000).
type Rate struct {
	bps int64
}

const maxBasisPoints = 10000

func RateFromBasisPoints(bps int64) (Rate, error) {
	if bps < 0 || bps > maxBasisPoints {
		return Rate{}, ErrInvalidRate
	}
	return Rate{bps: bps}, nil
}

func MustRate(bps int64) Rate {
	r, err := RateFromBasisPoints(bps)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRate accepts a percentage such as "10" or "12.5".
func ParseRate(s string) (Rate, error) {
	bps, err := parseFixed2(s)
	if err != nil {
		return Rate{}, ErrInvalidRate
	}
	return RateFromBasisPoints(bps)
}

func (r Rate) BasisPoints() int64 { return r.bps }

func (r Rate) String() string {
	return formatFixed2(r.bps)
}

func parseFixed2(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || (hasDot && (frac == "" || len(frac) > 2)) {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || f < 0 {
		return 0, ErrInvalidAmount
	}

	v := w*100 + f
	if neg {
		v = -v
	}
	return v, nil
}

func formatFixed2(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
