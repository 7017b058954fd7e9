package httpserver

import (
	"sync"

	"github.com/google/uuid"

	"freshstock/internal/domain"
)

// sessions stores per-session flow state keyed by opaque uuid handles.
// A session lives until the process exits. The per-session mutex
// serializes actions so each flow still sees one action at a time,
// even though HTTP requests may arrive concurrently.
type sessions[F any] struct {
	mu sync.RWMutex
	m  map[string]*session[F]
}

type session[F any] struct {
	mu   sync.Mutex
	flow F
}

func newSessions[F any]() *sessions[F] {
	return &sessions[F]{m: make(map[string]*session[F])}
}

func (s *sessions[F]) create(flow F) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.m[id] = &session[F]{flow: flow}
	s.mu.Unlock()
	return id
}

// with runs fn against the session's flow while holding its lock.
func (s *sessions[F]) with(id string, fn func(F) error) error {
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.flow)
}
