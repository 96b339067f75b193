// Package clock adapts the host clock to ports.Clock.
package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
)

// System reads the host clock and reports it in a fixed location, so that
// "today" follows the configured time zone rather than the process TZ.
type System struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*System)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *System) { s.now = now }
}

func New(loc *time.Location, opts ...Option) *System {
	if loc == nil {
		loc = time.Local
	}
	s := &System{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig resolves cfg.Defaults.Timezone into a System clock.
func FromConfig(cfg domain.Config, opts ...Option) (*System, error) {
	loc, err := LoadLocation(cfg.Defaults.Timezone)
	if err != nil {
		return nil, err
	}
	return New(loc, opts...), nil
}

var _ ports.Clock = (*System)(nil)

func (s *System) Now() time.Time {
	return s.now().In(s.loc)
}

// Today returns the calendar date of Now.
func (s *System) Today() domain.CalendarDate {
	return domain.NewCalendarDate(s.Now())
}

// Location returns the location dates are reported in.
func (s *System) Location() *time.Location {
	return s.loc
}

// LoadLocation accepts "", "Local", "UTC" or an IANA zone name.
func LoadLocation(name string) (*time.Location, error) {
	switch n := strings.TrimSpace(name); {
	case n == "" || strings.EqualFold(n, "local"):
		return time.Local, nil
	case strings.EqualFold(n, "utc"):
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(n)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "clock.load_location",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("unknown timezone %q: %w", n, err),
			}
		}
		return loc, nil
	}
}
