package domain

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Supported year range. The millennium label slices the decimal year, which
// only yields a well-formed "yyy.Mn" for four-digit years.
const (
	MinYear = 1000
	MaxYear = 9999
)

// CalendarLayout is the textual form accepted by ParseCalendarDate.
const CalendarLayout = "2006-01-02"

// CalendarDate is a day in the proleptic Gregorian calendar.
// The zero value is not a valid date; use Validate before relying on one
// built by hand.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the calendar date of t in t's location.
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate parses a YYYY-MM-DD date. Anything that is not a
// genuine calendar date fails with KindInvalidArgument.
func ParseCalendarDate(s string) (CalendarDate, error) {
	in := strings.TrimSpace(s)
	t, err := time.Parse(CalendarLayout, in)
	if err != nil {
		return CalendarDate{}, invalidArgument("domain.parse_date", "%q is not a calendar date (expected YYYY-MM-DD)", s)
	}
	cd := NewCalendarDate(t)
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// Validate reports whether cd names a real day inside [MinYear, MaxYear].
func (cd CalendarDate) Validate() error {
	if cd.Year < MinYear || cd.Year > MaxYear {
		return invalidArgument("domain.validate_date", "year must be between %d and %d, was %d", MinYear, MaxYear, cd.Year)
	}
	if cd.Month < time.January || cd.Month > time.December {
		return invalidArgument("domain.validate_date", "month must be between 1 and 12, was %d", int(cd.Month))
	}
	if n := int(datetime.DaysInMonth(cd.Year, datetime.Month(cd.Month))); cd.Day < 1 || cd.Day > n {
		return invalidArgument("domain.validate_date", "day must be between 1 and %d for %04d-%02d, was %d", n, cd.Year, int(cd.Month), cd.Day)
	}
	return nil
}

// IsZero reports whether cd is the zero value.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// Time returns midnight UTC of cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, 0, 0, 0, 0, time.UTC)
}

// DayOfYear returns 1 for January 1 up to 365 or 366 for December 31.
func (cd CalendarDate) DayOfYear() int {
	return cd.Time().YearDay()
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func (cd CalendarDate) DaysInYear() int {
	if datetime.IsLeap(cd.Year) {
		return 366
	}
	return 365
}

// Compare returns -1, 0 or +1 depending on whether cd is before, equal to
// or after other.
func (cd CalendarDate) Compare(other CalendarDate) int {
	switch {
	case cd.Year != other.Year:
		return cmpInt(cd.Year, other.Year)
	case cd.Month != other.Month:
		return cmpInt(int(cd.Month), int(other.Month))
	default:
		return cmpInt(cd.Day, other.Day)
	}
}

func (cd CalendarDate) Before(other CalendarDate) bool { return cd.Compare(other) < 0 }
func (cd CalendarDate) After(other CalendarDate) bool  { return cd.Compare(other) > 0 }
func (cd CalendarDate) Equal(other CalendarDate) bool  { return cd == other }

// AddDays returns the date n days after cd (n may be negative).
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(cd.Time().AddDate(0, 0, n))
}

// AddMonths moves cd by n months, clamping the day to the length of the
// target month (Jan 31 + 1 month is Feb 28 or 29).
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	idx := cd.Year*12 + int(cd.Month-1) + n
	year, month := idx/12, time.Month(idx%12+1)
	if idx < 0 {
		year, month = (idx-11)/12, time.Month((idx%12+12)%12+1)
	}
	day := cd.Day
	if days := int(datetime.DaysInMonth(year, datetime.Month(month))); day > days {
		day = days
	}
	return CalendarDate{Year: year, Month: month, Day: day}
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, int(cd.Month), cd.Day)
}

// MarshalText encodes cd as YYYY-MM-DD.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText accepts the same input as ParseCalendarDate.
func (cd *CalendarDate) UnmarshalText(b []byte) error {
	v, err := ParseCalendarDate(string(b))
	if err != nil {
		return err
	}
	*cd = v
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
