package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"
)

// Bounds for the administrative date class tag.
const (
	MinDateClass = 0
	MaxDateClass = 9
)

// Imperial is the composed (class, fraction, millennium) triple.
type Imperial struct {
	DateClass    int
	YearFraction float64
	Millennium   string
}

// ImperialDate wraps a calendar date and a date class and renders them in the
// "{class} {fraction} {yyy}.M{n}" notation, e.g. 2016-06-23 → "0 478 016.M3".
//
// Equality and ordering only look at the wrapped date; the class is a tag.
// An ImperialDate is not safe for concurrent mutation.
type ImperialDate struct {
	date  CalendarDate
	class int
}

type options struct {
	date  *CalendarDate
	class int
	now   func() time.Time
}

// Option configures New.
type Option func(*options)

// WithDate wraps d instead of today's date.
func WithDate(d CalendarDate) Option {
	return func(o *options) {
		o.date = &d
	}
}

// WithDateClass sets the initial date class (default 0).
func WithDateClass(class int) Option {
	return func(o *options) { o.class = class }
}

// WithClock replaces the host clock used when no date is given.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New builds an ImperialDate. Without WithDate the wrapped date is today's
// date as reported by the clock. The class is validated before the date.
func New(opts ...Option) (*ImperialDate, error) {
	o := options{class: MinDateClass, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	id := &ImperialDate{}
	if err := id.SetDateClass(o.class); err != nil {
		return nil, err
	}

	var d CalendarDate
	if o.date != nil {
		d = *o.date
	} else {
		d = NewCalendarDate(o.now())
	}
	if err := id.SetRegularDate(d); err != nil {
		return nil, err
	}
	return id, nil
}

// MustNew is New for callers with known-good input. It panics on error.
func MustNew(opts ...Option) *ImperialDate {
	id, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return id
}

// RegularDate returns the wrapped calendar date.
func (id *ImperialDate) RegularDate() CalendarDate {
	return id.date
}

// SetRegularDate replaces the wrapped date. On error the previous date is
// kept.
func (id *ImperialDate) SetRegularDate(d CalendarDate) error {
	if err := d.Validate(); err != nil {
		return err
	}
	id.date = d
	return nil
}

// DateClass returns the class tag.
func (id *ImperialDate) DateClass() int {
	return id.class
}

// SetDateClass replaces the class tag. Values outside
// [MinDateClass, MaxDateClass] fail with KindInvalidArgument and leave the
// previous tag in place.
func (id *ImperialDate) SetDateClass(class int) error {
	if err := ValidateDateClass(class); err != nil {
		return err
	}
	id.class = class
	return nil
}

// ValidateDateClass checks the [MinDateClass, MaxDateClass] bound.
func ValidateDateClass(class int) error {
	if class < MinDateClass || class > MaxDateClass {
		return invalidArgument("domain.date_class", "date class must be between %d and %d, was %d", MinDateClass, MaxDateClass, class)
	}
	return nil
}

// ParseDateClass parses a textual class tag such as a flag or YAML value.
func ParseDateClass(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidArgument("domain.date_class", "date class must be between %d and %d, was %q", MinDateClass, MaxDateClass, s)
	}
	if err := ValidateDateClass(n); err != nil {
		return 0, err
	}
	return n, nil
}

// MillenniumLabel returns the last three digits of the year followed by
// ".M" and the 1-indexed millennium: 2016 → "016.M3".
func (id *ImperialDate) MillenniumLabel() string {
	return millenniumLabel(id.date.Year)
}

func millenniumLabel(year int) string {
	y := strconv.Itoa(year)
	cut := len(y) - 3
	millennium, _ := strconv.Atoi(y[:cut])
	return fmt.Sprintf("%s.M%d", y[cut:], millennium+1)
}

// YearFraction is the position of the date inside its year scaled to
// (0, 1000]: January 1 is just above 0, December 31 is exactly 1000.
func (id *ImperialDate) YearFraction() float64 {
	return float64(id.date.DayOfYear()) / float64(id.date.DaysInYear()) * 1000
}

// Imperial returns the (class, fraction, millennium) triple.
func (id *ImperialDate) Imperial() Imperial {
	return Imperial{
		DateClass:    id.class,
		YearFraction: id.YearFraction(),
		Millennium:   id.MillenniumLabel(),
	}
}

// String renders "{class} {floor(fraction)} {millennium}".
func (id *ImperialDate) String() string {
	imp := id.Imperial()
	return fmt.Sprintf("%d %d %s", imp.DateClass, int(math.Floor(imp.YearFraction)), imp.Millennium)
}

func (id *ImperialDate) GoString() string {
	return fmt.Sprintf("<ImperialDate %s>", id.String())
}

// Compare orders by wrapped date only.
func (id *ImperialDate) Compare(other *ImperialDate) int {
	return id.date.Compare(other.date)
}

// Equal reports whether both values wrap the same date. The class is ignored.
func (id *ImperialDate) Equal(other *ImperialDate) bool {
	return id.date == other.date
}

func (id *ImperialDate) Less(other *ImperialDate) bool           { return id.Compare(other) < 0 }
func (id *ImperialDate) LessOrEqual(other *ImperialDate) bool    { return id.Compare(other) <= 0 }
func (id *ImperialDate) Greater(other *ImperialDate) bool        { return id.Compare(other) > 0 }
func (id *ImperialDate) GreaterOrEqual(other *ImperialDate) bool { return id.Compare(other) >= 0 }

// SortImperialDates sorts in chronological order, keeping the input order of
// values that wrap the same date.
func SortImperialDates(ids []*ImperialDate) {
	slices.SortStableFunc(ids, (*ImperialDate).Compare)
}

type imperialJSON struct {
	Date         CalendarDate `json:"date"`
	DateClass    int          `json:"date_class"`
	YearFraction float64      `json:"year_fraction"`
	Millennium   string       `json:"millennium"`
	Imperial     string       `json:"imperial"`
}

func (id *ImperialDate) MarshalJSON() ([]byte, error) {
	imp := id.Imperial()
	return json.Marshal(imperialJSON{
		Date:         id.date,
		DateClass:    imp.DateClass,
		YearFraction: imp.YearFraction,
		Millennium:   imp.Millennium,
		Imperial:     id.String(),
	})
}

// UnmarshalJSON reads the date and class back; derived fields are ignored.
func (id *ImperialDate) UnmarshalJSON(b []byte) error {
	var v imperialJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	next := ImperialDate{}
	if err := next.SetDateClass(v.DateClass); err != nil {
		return err
	}
	if err := next.SetRegularDate(v.Date); err != nil {
		return err
	}
	*id = next
	return nil
}
