package entitycache

import (
	"sync"

	"github.com/goliatone/go-cache-layer/foreign"
	"go.trai.ch/zerr"
)

// Predicate reports whether a registration handles v. Predicates run on every
// wrap of every record-like value, so they must be cheap and side-effect free.
type Predicate func(v any) bool

// Factory builds the caching decorator for v. It is only called after the
// registration's predicate accepted v.
type Factory func(l *Layer, v any) Wrapper

// Binder subscribes the invalidation listeners of a handler family and
// returns the subscription token. It runs at most once per Layer.
type Binder func(l *Layer, events foreign.AfterEvents) string

// Registration selects a caching policy for one shape of foreign object.
type Registration struct {
	ID    string
	Match Predicate
	New   Factory
	Bind  Binder
}

// Registry is an ordered, append-only list of registrations. The first
// registration whose predicate matches wins, so registration order is the
// tie-break between overlapping predicates.
type Registry struct {
	mu      sync.RWMutex
	entries []Registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends reg. There is no way to remove it afterwards.
func (r *Registry) Register(reg Registration) error {
	if reg.ID == "" {
		return zerr.Wrap(ErrEmptyRegistrationID, "register handler")
	}
	if reg.Match == nil {
		return registerError(ErrNilPredicate, reg.ID)
	}
	if reg.New == nil {
		return registerError(ErrNilFactory, reg.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.ID == reg.ID {
			return registerError(ErrDuplicateRegistration, reg.ID)
		}
	}
	r.entries = append(r.entries, reg)
	return nil
}

// Resolve returns the first registration whose predicate accepts v.
func (r *Registry) Resolve(v any) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reg := range r.entries {
		if reg.Match(v) {
			return reg, true
		}
	}
	return Registration{}, false
}

// Entries returns the registrations in registration order.
func (r *Registry) Entries() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Registration(nil), r.entries...)
}

func registerError(err error, id string) error {
	return zerr.With(zerr.Wrap(err, "register handler"), "id", id)
}
