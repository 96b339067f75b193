package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/imperial/internal/domain"
)

func TestConvertDateList_SortsChronologically(t *testing.T) {
	loader := &fakeDateListLoader{list: domain.DateList{
		Name: "Chapter",
		Entries: []domain.DateEntry{
			{Name: "later", Date: cd(2017, time.April, 5), DateClass: 1},
			{Name: "first", Date: cd(2016, time.January, 1)},
			{Name: "later-too", Date: cd(2017, time.April, 5), DateClass: 2},
		},
	}}

	uc := NewConvertDateList(loader)
	res, err := uc.Execute(context.Background(), "dates/chapter.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loader.path != "dates/chapter.yaml" {
		t.Fatalf("expected loader to receive path, got %q", loader.path)
	}
	if res.Name != "Chapter" || res.Path != "dates/chapter.yaml" {
		t.Fatalf("unexpected header: %+v", res)
	}

	var names []string
	for _, e := range res.Entries {
		names = append(names, e.Name)
	}
	want := []string{"first", "later", "later-too"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if res.Entries[2].Date.DateClass() != 2 {
		t.Fatalf("expected class to be carried, got %d", res.Entries[2].Date.DateClass())
	}
}

func TestConvertDateList_LoadError(t *testing.T) {
	loadErr := &domain.OpError{Op: "yamldates.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	uc := NewConvertDateList(&fakeDateListLoader{err: loadErr})

	_, err := uc.Execute(context.Background(), "missing.yaml")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestConvertDateList_InvalidEntry(t *testing.T) {
	uc := NewConvertDateList(&fakeDateListLoader{list: domain.DateList{
		Entries: []domain.DateEntry{{Name: "bad", Date: cd(2016, time.January, 1), DateClass: 11}},
	}})

	_, err := uc.Execute(context.Background(), "x.yaml")
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
}
