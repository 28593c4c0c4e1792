package session

import (
	"errors"
	"sync"
)

var ErrPartialSession = errors.New("session must hold both user id and role")

// Store is the single source of truth for the current session.
// It is an explicit injectable container rather than package state,
// so tests can substitute their own instances.
type Store struct {
	mu          sync.Mutex
	status      Status
	session     Session
	subscribers []func(Session, Status)
}

func NewStore() *Store {
	return &Store{status: StatusUninitialized}
}

// Get never blocks.
func (s *Store) Get() (Session, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session, s.status
}

func (s *Store) StartResolving() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusResolving
}

// Set atomically replaces the session and notifies subscribers.
func (s *Store) Set(session Session) error {
	if !session.IsComplete() {
		return ErrPartialSession
	}

	s.mu.Lock()
	s.session = session
	s.status = StatusAuthenticated
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(session, StatusAuthenticated)
	}
	return nil
}

// Clear resets the store to the anonymous state and notifies subscribers.
func (s *Store) Clear() {
	s.mu.Lock()
	s.session = Session{}
	s.status = StatusAnonymous
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(Session{}, StatusAnonymous)
	}
}

func (s *Store) Subscribe(notify func(Session, Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, notify)
}
