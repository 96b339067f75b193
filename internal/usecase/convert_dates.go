package usecase

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/errors"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
)

// TodayKeyword selects the clock's current date as an input.
const TodayKeyword = "today"

// Conversion pairs a raw input with the value it produced.
type Conversion struct {
	Input string               `json:"input"`
	Date  *domain.ImperialDate `json:"date"`
}

type ConvertDates struct {
	clock ports.Clock
}

func NewConvertDates(clock ports.Clock) *ConvertDates {
	return &ConvertDates{clock: clock}
}

// Execute converts every input (YYYY-MM-DD or "today") using class as the
// date class. No inputs means today. Inputs that fail are reported together
// in the returned error while the others are still converted.
func (uc *ConvertDates) Execute(ctx context.Context, inputs []string, class int) ([]Conversion, error) {
	if err := domain.ValidateDateClass(class); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		inputs = []string{TodayKeyword}
	}

	out := make([]Conversion, 0, len(inputs))
	errs := &errors.M{}
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}

		id, err := uc.convert(in, class)
		if err != nil {
			errs.Append(fmt.Errorf("input %q: %w", in, err))
			continue
		}
		out = append(out, Conversion{Input: in, Date: id})
	}
	return out, errs.Err()
}

// One converts a single input.
func (uc *ConvertDates) One(input string, class int) (*domain.ImperialDate, error) {
	return uc.convert(input, class)
}

func (uc *ConvertDates) convert(input string, class int) (*domain.ImperialDate, error) {
	in := strings.TrimSpace(input)
	if in == "" || strings.EqualFold(in, TodayKeyword) {
		return domain.New(domain.WithClock(uc.clock.Now), domain.WithDateClass(class))
	}

	d, err := domain.ParseCalendarDate(in)
	if err != nil {
		return nil, err
	}
	return domain.New(domain.WithDate(d), domain.WithDateClass(class))
}
