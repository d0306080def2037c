package tui

import (
	"errors"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindLocator:
			return "Invalid locator — expected an IPFS CID"
		case domain.KindFetch:
			return "Unable to fetch content from the gateway"
		case domain.KindNotFound:
			return "Not found"
		case domain.KindInvalidConfig:
			return "Invalid type table configuration"
		case domain.KindExecution:
			return "Operation failed (see logs)"
		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

func renderMessage(rerr *domain.RenderError) string {
	if rerr == nil {
		return ""
	}
	return "Could not render content: " + rerr.Message
}
