package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/aalvaropc/imperial/internal/domain"
)

func TestCompareDates(t *testing.T) {
	uc := NewCompareDates(clockAt(2016, time.June, 23))

	cases := []struct {
		a, b     string
		order    int
		relation string
	}{
		{"2016-01-01", "2017-04-05", -1, "<"},
		{"2017-04-05", "2016-01-01", 1, ">"},
		{"today", "2016-06-23", 0, "="},
	}
	for _, c := range cases {
		got, err := uc.Execute(context.Background(), c.a, c.b)
		if err != nil {
			t.Fatalf("Execute(%q, %q): %v", c.a, c.b, err)
		}
		if got.Order != c.order || got.Relation() != c.relation {
			t.Errorf("Execute(%q, %q) = %d %s, want %d %s", c.a, c.b, got.Order, got.Relation(), c.order, c.relation)
		}
	}
}

func TestCompareDates_InvalidInput(t *testing.T) {
	uc := NewCompareDates(clockAt(2016, time.June, 23))
	if _, err := uc.Execute(context.Background(), "2016-01-01", "TEST"); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), "nope", "2016-01-01"); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
}
