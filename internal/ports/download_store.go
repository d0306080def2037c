package ports

import "github.com/loan-mgt/ipfs-viewer/internal/domain"

// DownloadStore persists a payload under its suggested download name.
type DownloadStore interface {
	Save(p domain.Payload, d domain.DownloadDescriptor) (path string, err error)
}
