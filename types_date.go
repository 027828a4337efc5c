package qif

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateLayout is the layout used to write dates back when no
// explicit layout was given to the parser. It is the month-first
// spelling the producer emits by default.
const DefaultDateLayout = "01/02/06"

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether the date field was absent from the record.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format("2006-01-02") }

// Format returns the date formatted according to the given time layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// parseQifDate converts a raw date token into a Date.
//
// Tokens come in several ambiguous spellings: "7/ 9/98", "10/10/99",
// "10/10'01" (the apostrophe marks the 2000s), or "22/01/2002".
//
// When layout is non-empty, an apostrophe century marker is rewritten to
// a regular separator ("' " becomes "/0", any remaining "'" becomes "/")
// and the token is parsed with [time.Parse]. Otherwise the placement is
// guessed: single-digit day and month are zero-padded, remaining spaces
// become zero digits, a 10-character token is read as
// day/month/4-digit-year, and shorter tokens take their century from the
// marker at position 5. Day-first cannot be told apart from month-first
// without a layout; callers that know the locale must pass one.
func parseQifDate(token, layout string) (Date, error) {
	if layout != "" {
		nice := token
		if strings.Contains(nice, "'") {
			nice = strings.ReplaceAll(nice, "' ", "/0")
			nice = strings.ReplaceAll(nice, "'", "/")
		}
		t, err := time.Parse(layout, nice)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, token, err)
		}
		return NewDate(t.Date()), nil
	}

	q := token
	if len(q) > 1 && q[1] == '/' {
		q = "0" + q // extend day to 2 digits
	}
	if len(q) > 4 && q[4] == '/' {
		q = q[:3] + "0" + q[3:] // extend month to 2 digits
	}
	q = strings.ReplaceAll(q, " ", "0")

	var iso string
	switch len(q) {
	case 10: // 4-digit year form
		iso = q[6:10] + "-" + q[3:5] + "-" + q[0:2]
	case 8:
		century := "19"
		if q[5] == '\'' {
			century = "20"
		}
		iso = century + q[6:8] + "-" + q[3:5] + "-" + q[0:2]
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, token, err)
	}
	return NewDate(t.Date()), nil
}
