// Package datekey handles the canonical keys used for sukoon's local
// records: "YYYY-MM-DD" for days and "YYYY-MM" for months. Keys are
// zero-padded so that lexicographic order equals chronological order.
package datekey

import (
	"fmt"
	"time"
)

// FormatError reports a string that does not match the canonical
// "YYYY-MM-DD" shape.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed date key %q", e.Input)
}

// Date is a parsed day key.
type Date struct {
	Year  int
	Month int
	Day   int
}

// FromTime returns the day key for t's wall-clock date.
func FromTime(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthFromTime returns the month key for t's wall-clock date.
func MonthFromTime(t time.Time) string {
	return t.Format("2006-01")
}

// Valid reports whether dk has the canonical "YYYY-MM-DD" shape. Only
// the shape is checked; stored records never validated calendar
// plausibility beyond it.
func Valid(dk string) bool {
	if len(dk) != 10 || dk[4] != '-' || dk[7] != '-' {
		return false
	}
	for _, i := range [8]int{0, 1, 2, 3, 5, 6, 8, 9} {
		if dk[i] < '0' || dk[i] > '9' {
			return false
		}
	}
	return true
}

// MonthOf truncates a day key to its month key.
func MonthOf(dk string) (string, error) {
	if !Valid(dk) {
		return "", &FormatError{Input: dk}
	}
	return dk[:7], nil
}

// Parse splits a day key into its numeric parts. On malformed input it
// returns the zero Date and a *FormatError; display callers may ignore
// the error and fall back to echoing the raw string.
func Parse(dk string) (Date, error) {
	if !Valid(dk) {
		return Date{}, &FormatError{Input: dk}
	}
	return Date{
		Year:  digits(dk[0:4]),
		Month: digits(dk[5:7]),
		Day:   digits(dk[8:10]),
	}, nil
}

// digits parses a run of ASCII digits already checked by Valid.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
