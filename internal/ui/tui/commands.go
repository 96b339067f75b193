package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/infra/workspacefinder"
	"github.com/aalvaropc/imperial/internal/infra/yamldates"
	"github.com/aalvaropc/imperial/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		abs, err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: abs, err: err}
	}
}

func loadDateLoader(root string) (*yamldates.Loader, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}
	return yamldates.NewLoader(yamldates.WithDatesDir(cfg.Paths.DatesDir)), nil
}

func cmdLoadDateLists(root string) tea.Cmd {
	return func() tea.Msg {
		loader, err := loadDateLoader(root)
		if err != nil {
			return dateListsLoadedMsg{root: root, err: err}
		}

		refs, err := loader.ListDateLists(root)
		return dateListsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdConvertDateList(root, path string) tea.Cmd {
	return func() tea.Msg {
		loader, err := loadDateLoader(root)
		if err != nil {
			return dateListConvertedMsg{err: err}
		}

		res, err := usecase.NewConvertDateList(loader).Execute(context.Background(), path)
		return dateListConvertedMsg{res: res, err: err}
	}
}
