package tui

import "github.com/loan-mgt/ipfs-viewer/internal/usecase"

type viewDoneMsg struct {
	token uint64
	out   usecase.ViewOutput
	err   error
}

type saveDoneMsg struct {
	path string
	err  error
}
