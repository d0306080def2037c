package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindFetch         ErrorKind = "fetch"
	KindLocator       ErrorKind = "invalid_locator"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path or locator
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// Stage identifies where in the pipeline a render failure happened.
type Stage string

const (
	StageTypeResolution Stage = "type_resolution"
	StageClassification Stage = "classification"
	StageRendering      Stage = "rendering"
)

// RenderError is the typed failure value a sink receives instead of a
// RenderResult. Renderer faults never escape the dispatcher as panics.
type RenderError struct {
	Stage   Stage
	Message string
}

func NewRenderError(stage Stage, message string) *RenderError {
	return &RenderError{Stage: stage, Message: message}
}

func (e *RenderError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("render failed at %s: %s", e.Stage, e.Message)
}
