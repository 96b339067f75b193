package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
)

// ListEntry is a converted DateEntry.
type ListEntry struct {
	Name string               `json:"name"`
	Date *domain.ImperialDate `json:"date"`
}

type ListResult struct {
	Name    string      `json:"name"`
	Path    string      `json:"path"`
	Entries []ListEntry `json:"entries"`
}

type ConvertDateList struct {
	lists ports.DateListLoader
}

func NewConvertDateList(ll ports.DateListLoader) *ConvertDateList {
	return &ConvertDateList{lists: ll}
}

// Execute loads the list at path and converts every entry. Entries come back
// in chronological order; entries on the same day keep file order.
func (uc *ConvertDateList) Execute(ctx context.Context, path string) (ListResult, error) {
	list, err := uc.lists.LoadDateList(path)
	if err != nil {
		return ListResult{}, err
	}

	res := ListResult{
		Name:    list.Name,
		Path:    path,
		Entries: make([]ListEntry, 0, len(list.Entries)),
	}
	for _, e := range list.Entries {
		if err := ctx.Err(); err != nil {
			return ListResult{}, err
		}

		id, err := e.ImperialDate()
		if err != nil {
			return ListResult{}, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		res.Entries = append(res.Entries, ListEntry{Name: e.Name, Date: id})
	}

	slices.SortStableFunc(res.Entries, func(a, b ListEntry) int {
		return a.Date.Compare(b.Date)
	})
	return res, nil
}
