package tui

import (
	"log/slog"

	"github.com/aalvaropc/imperial/internal/ports"
)

type Deps struct {
	Clock     ports.Clock
	DateClass int

	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
