package folio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateFormat is the only format accepted and produced for dates.
const DateFormat = "2006-01-02"

// Date represents a calendar day with day-level granularity. There is no
// timezone concept: a Date is a pure point on the Gregorian calendar, and
// its serial number is used as a total-order key for the transaction log.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the Date for the given year, month, and day. The caller
// is expected to provide a valid calendar day; ParseDate is the validating
// entry point for external input.
func NewDate(year int, month time.Month, day int) Date {
	return Date{y: year, m: month, d: day}
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date as zero-padded YYYY-MM-DD.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.y, int(d.m), d.d) }

// isLeap reports whether a year is a Gregorian leap year.
func isLeap(y int) bool { return y%400 == 0 || (y%4 == 0 && y%100 != 0) }

var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the number of days in a month of a given year.
func daysIn(y int, m time.Month) int {
	if m == time.February && isLeap(y) {
		return 29
	}
	return monthLengths[m]
}

func yearDays(y int) int {
	if isLeap(y) {
		return 366
	}
	return 365
}

// Serial returns the number of days elapsed since 1970-01-01, counting
// whole years, then whole months, then the day offset.
func (d Date) Serial() int {
	days := 0
	for y := 1970; y < d.y; y++ {
		days += yearDays(y)
	}
	for y := d.y; y < 1970; y++ {
		days -= yearDays(y)
	}
	for m := time.January; m < d.m; m++ {
		days += daysIn(d.y, m)
	}
	return days + d.d - 1
}

// Before reports whether the day d is strictly before x.
func (d Date) Before(x Date) bool { return d.Serial() < x.Serial() }

// After reports whether the day d is strictly after x.
func (d Date) After(x Date) bool { return d.Serial() > x.Serial() }

// Today returns the current date.
func Today() Date {
	y, m, day := time.Now().Date()
	return NewDate(y, m, day)
}

// ParseDate parses a Date from a string. It accepts exactly the pattern
// YYYY-MM-DD with numeric fields, and rejects calendar-impossible days
// honoring the Gregorian leap-year rule. Failures wrap ErrInvalidDate.
func ParseDate(str string) (Date, error) {
	if len(str) != 10 || str[4] != '-' || str[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q, want format %s", ErrInvalidDate, str, DateFormat)
	}
	y, err := atoiDigits(str[0:4])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q has a non-numeric year", ErrInvalidDate, str)
	}
	m, err := atoiDigits(str[5:7])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q has a non-numeric month", ErrInvalidDate, str)
	}
	day, err := atoiDigits(str[8:10])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q has a non-numeric day", ErrInvalidDate, str)
	}
	if m < 1 || m > 12 {
		return Date{}, fmt.Errorf("%w: %q month out of range", ErrInvalidDate, str)
	}
	if day < 1 || day > daysIn(y, time.Month(m)) {
		return Date{}, fmt.Errorf("%w: %q day out of range", ErrInvalidDate, str)
	}
	return NewDate(y, time.Month(m), day), nil
}

// atoiDigits is a strict Atoi: digits only, no signs or spaces.
func atoiDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// MustDate is like ParseDate but panics on error. For tests and literals.
func MustDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON decodes a date from a JSON string, strictly.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

// MarshalJSON encodes the date as a YYYY-MM-DD JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
