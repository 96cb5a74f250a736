// Package events provides an in-process implementation of foreign.Signal.
package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-cache-layer/foreign"
)

var _ foreign.Signal[struct{}] = (*Signal[struct{}])(nil)

type subscriber[E any] struct {
	token    string
	callback func(E)
}

// Signal fans an event out to its subscribers in subscription order.
// Subscriptions are never removed.
type Signal[E any] struct {
	mu          sync.RWMutex
	subscribers []subscriber[E]
}

// NewSignal creates a Signal without subscribers.
func NewSignal[E any]() *Signal[E] {
	return &Signal[E]{}
}

// Subscribe registers callback and returns its subscription token.
func (s *Signal[E]) Subscribe(callback func(E)) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, subscriber[E]{token: token, callback: callback})
	return token
}

// Emit calls every subscriber with event. Callbacks run to completion one
// after the other on the caller's goroutine.
func (s *Signal[E]) Emit(event E) {
	s.mu.RLock()
	subscribers := append([]subscriber[E](nil), s.subscribers...)
	s.mu.RUnlock()

	for _, sub := range subscribers {
		sub.callback(event)
	}
}

// Len reports the number of subscribers.
func (s *Signal[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}
