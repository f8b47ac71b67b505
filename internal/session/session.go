// Package session holds the ordered list of logged sessions and persists it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/stats"
	"github.com/verte-zerg/hoopmetrics/internal/store"
)

// StorageKey is the key holding the serialized session list.
const StorageKey = "basketballSessions"

// ErrIndexOutOfRange is returned by RemoveAt for an invalid position.
var ErrIndexOutOfRange = errors.New("session index out of range")

// Backend is durable key-value storage.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store keeps sessions in creation order and writes a full snapshot on every
// mutation. It is not safe for concurrent use.
type Store struct {
	backend  Backend
	key      string
	warn     func(string)
	sessions []model.Session

	stats      model.AggregateStats
	statsValid bool
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithWarnings routes rehydrate fallbacks to fn.
func WithWarnings(fn func(string)) Option {
	return func(s *Store) {
		if fn != nil {
			s.warn = fn
		}
	}
}

// Key returns the storage key the session list is persisted under.
func (s *Store) Key() string {
	return s.key
}

// New returns an empty Store backed by backend. Call Rehydrate to load saved data.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, key: StorageKey, warn: func(string) {}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rehydrate replaces the in-memory list with the persisted one. Missing or
// unreadable data leaves the store empty; the returned error only explains why.
func (s *Store) Rehydrate(ctx context.Context) error {
	s.sessions = nil
	s.statsValid = false
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		err = fmt.Errorf("failed to read sessions: %w", err)
		s.warn(err.Error())
		return err
	}
	var sessions []model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		err = fmt.Errorf("failed to parse stored sessions, starting empty: %w", err)
		s.warn(err.Error())
		return err
	}
	s.sessions = sessions
	return nil
}

// Sessions returns a copy of the list in creation order.
func (s *Store) Sessions() []model.Session {
	return append([]model.Session(nil), s.sessions...)
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	return len(s.sessions)
}

// Stats returns aggregate stats for the current list.
func (s *Store) Stats() model.AggregateStats {
	if !s.statsValid {
		s.stats = stats.Aggregate(s.sessions)
		s.statsValid = true
	}
	return s.stats
}

// Add appends a validated session and persists the list. The session stays in
// memory even when the write fails.
func (s *Store) Add(ctx context.Context, session model.Session) error {
	s.sessions = append(s.sessions, session)
	s.statsValid = false
	return s.persist(ctx)
}

// RemoveAt deletes the session at index in stored order and persists the list.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.sessions) {
		return fmt.Errorf("%w: %d (have %d sessions)", ErrIndexOutOfRange, index, len(s.sessions))
	}
	updated := make([]model.Session, 0, len(s.sessions)-1)
	updated = append(updated, s.sessions[:index]...)
	updated = append(updated, s.sessions[index+1:]...)
	s.sessions = updated
	s.statsValid = false
	return s.persist(ctx)
}

// Replace swaps the whole list and persists it.
func (s *Store) Replace(ctx context.Context, sessions []model.Session) error {
	s.sessions = append([]model.Session(nil), sessions...)
	s.statsValid = false
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	snapshot := s.sessions
	if snapshot == nil {
		snapshot = []model.Session{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}
	return nil
}
