package usecase

import (
	"sync"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

// Session is the single current-render slot of a presentation sink.
//
// Only one render is live at a time; a newer request supersedes any prior
// in-flight one. Commits carry the token handed out by Next: a stale commit
// is discarded (its resource handle released) so a slow render can never
// overwrite a newer result. Committing releases the previous result's handle,
// keeping resource growth bounded across repeated requests.
type Session struct {
	mu      sync.Mutex
	seq     uint64
	current *domain.RenderResult
}

func NewSession() *Session {
	return &Session{}
}

// Next registers a new request and returns its token, invalidating all
// earlier tokens.
func (s *Session) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Commit installs res as the current result if token is still the latest.
// It reports whether the result was installed; a superseded result is
// released immediately.
func (s *Session) Commit(token uint64, res domain.RenderResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		_ = res.Release()
		return false
	}

	if s.current != nil {
		_ = s.current.Release()
	}
	installed := res
	s.current = &installed
	return true
}

// Latest reports whether token still identifies the newest request.
func (s *Session) Latest(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token == s.seq
}

// Current returns the installed result, if any.
func (s *Session) Current() (domain.RenderResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.RenderResult{}, false
	}
	return *s.current, true
}

// Close releases the current result. Called when the sink is torn down.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		_ = s.current.Release()
		s.current = nil
	}
}
