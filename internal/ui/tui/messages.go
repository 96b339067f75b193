package tui

import (
	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/usecase"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type dateListsLoadedMsg struct {
	root string
	refs []domain.DateListRef
	err  error
}

type dateListConvertedMsg struct {
	res usecase.ListResult
	err error
}
