package usecase

import (
	"time"

	"github.com/aalvaropc/imperial/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

func clockAt(y int, m time.Month, d int) fakeClock {
	return fakeClock{now: time.Date(y, m, d, 9, 0, 0, 0, time.UTC)}
}

type fakeDateListLoader struct {
	list domain.DateList
	err  error
	path string
}

func (f *fakeDateListLoader) LoadDateList(path string) (domain.DateList, error) {
	f.path = path
	return f.list, f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

func cd(y int, m time.Month, d int) domain.CalendarDate {
	return domain.CalendarDate{Year: y, Month: m, Day: d}
}
