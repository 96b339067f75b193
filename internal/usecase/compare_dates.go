package usecase

import (
	"context"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
)

// Comparison is the outcome of CompareDates. Order is -1, 0 or +1 as in
// domain.ImperialDate.Compare.
type Comparison struct {
	A     *domain.ImperialDate `json:"a"`
	B     *domain.ImperialDate `json:"b"`
	Order int                  `json:"order"`
}

// Relation returns "<", "=" or ">".
func (c Comparison) Relation() string {
	switch {
	case c.Order < 0:
		return "<"
	case c.Order > 0:
		return ">"
	}
	return "="
}

type CompareDates struct {
	convert *ConvertDates
}

func NewCompareDates(clock ports.Clock) *CompareDates {
	return &CompareDates{convert: NewConvertDates(clock)}
}

// Execute orders two inputs chronologically. Date classes do not take part
// in the comparison.
func (uc *CompareDates) Execute(ctx context.Context, a, b string) (Comparison, error) {
	if err := ctx.Err(); err != nil {
		return Comparison{}, err
	}

	left, err := uc.convert.One(a, domain.MinDateClass)
	if err != nil {
		return Comparison{}, err
	}
	right, err := uc.convert.One(b, domain.MinDateClass)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{A: left, B: right, Order: left.Compare(right)}, nil
}
