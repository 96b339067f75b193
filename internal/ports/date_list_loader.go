package ports

import "github.com/aalvaropc/imperial/internal/domain"

// DateListLoader loads date lists from a source (e.g., filesystem).
type DateListLoader interface {
	LoadDateList(path string) (domain.DateList, error)
}

type DateListCatalog interface {
	ListDateLists(root string) ([]domain.DateListRef, error)
}
