package tui

import (
	"log/slog"

	"github.com/loan-mgt/ipfs-viewer/internal/ports"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
)

type Deps struct {
	Viewer *usecase.Viewer
	Store  ports.DownloadStore

	Logger *slog.Logger
	Debug  bool
}
