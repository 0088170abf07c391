package stay

import (
	"errors"
	"iter"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidRange = errors.New("check-in must be before check-out")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
)

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Range is the half-open interval of nights [checkIn, checkOut).
type Range struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewRange(checkIn, checkOut time.Time) (Range, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !in.Before(out) {
		return Range{}, ErrInvalidRange
	}
	return Range{checkIn: in, checkOut: out}, nil
}

func ParseRange(checkIn, checkOut string) (Range, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Range{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Range{}, err
	}
	return NewRange(in, out)
}

func (r Range) CheckIn() time.Time  { return r.checkIn }
func (r Range) CheckOut() time.Time { return r.checkOut }

func (r Range) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps treats touching ranges (one ends the day the other begins) as disjoint.
func (r Range) Overlaps(o Range) bool {
	return r.checkIn.Before(o.checkOut) && r.checkOut.After(o.checkIn)
}

func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

// Clip returns the part of r inside window; ok is false when they do not overlap.
func (r Range) Clip(window Range) (Range, bool) {
	if !r.Overlaps(window) {
		return Range{}, false
	}
	in, out := r.checkIn, r.checkOut
	if window.checkIn.After(in) {
		in = window.checkIn
	}
	if window.checkOut.Before(out) {
		out = window.checkOut
	}
	return Range{checkIn: in, checkOut: out}, true
}

// EachNight yields every night of the range in order.
func (r Range) EachNight() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return "[" + FormatDate(r.checkIn) + ", " + FormatDate(r.checkOut) + ")"
}
