package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
)

// cmdView runs the pipeline for one locator. The token ties the eventual
// message to the request that started it; the model drops stale answers.
func cmdView(deps Deps, ctx context.Context, token uint64, locator string) tea.Cmd {
	return func() tea.Msg {
		out, err := deps.Viewer.View(ctx, locator)
		return viewDoneMsg{token: token, out: out, err: err}
	}
}

func cmdSave(deps Deps, out usecase.ViewOutput) tea.Cmd {
	return func() tea.Msg {
		if out.Result.Download == nil {
			return saveDoneMsg{}
		}
		path, err := deps.Store.Save(out.Payload, *out.Result.Download)
		return saveDoneMsg{path: path, err: err}
	}
}
