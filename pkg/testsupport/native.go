package testsupport

import (
	"maps"
	"sync"

	"go.trai.ch/zerr"

	"github.com/goliatone/go-cache-layer/foreign"
)

// Native counts the calls made into a simulated native object and can be
// told to fail the next call of a method.
type Native struct {
	mu       sync.Mutex
	counts   map[string]int
	failures map[string]error
}

// IncCount records a call of the method called name.
func (n *Native) IncCount(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inc(name)
}

// GetCount returns the number of calls of name since the last reset.
func (n *Native) GetCount(name string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counts[name]
}

// ResetCounters forgets every recorded call.
func (n *Native) ResetCounters() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.counts = nil
}

// Counts returns a copy of the recorded calls.
func (n *Native) Counts() map[string]int {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make(map[string]int, len(n.counts))
	maps.Copy(out, n.counts)
	return out
}

// FailNext makes the next call of name return err.
func (n *Native) FailNext(name string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failures == nil {
		n.failures = make(map[string]error)
	}
	n.failures[name] = err
}

// call records a call of name and returns the failure queued for it.
func (n *Native) call(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inc(name)
	if err, ok := n.failures[name]; ok {
		delete(n.failures, name)
		return err
	}
	return nil
}

func (n *Native) inc(name string) {
	if n.counts == nil {
		n.counts = make(map[string]int)
	}
	n.counts[name]++
}

// properties is the dynamic property storage shared by the world and its
// entities.
type properties struct {
	Native
	valuesMu sync.Mutex
	values   map[string]any
}

func (p *properties) GetDynamicProperty(identifier string) (any, error) {
	if err := p.call("getDynamicProperty"); err != nil {
		return nil, err
	}
	p.valuesMu.Lock()
	defer p.valuesMu.Unlock()
	return p.values[identifier], nil
}

func (p *properties) SetDynamicProperty(identifier string, value any) error {
	if err := p.call("setDynamicProperty"); err != nil {
		return err
	}
	if !foreign.PropertyValue(value) {
		return zerr.With(zerr.Wrap(ErrInvalidPropertyValue, "set dynamic property"), "property", identifier)
	}

	p.valuesMu.Lock()
	defer p.valuesMu.Unlock()
	if value == nil {
		delete(p.values, identifier)
		return nil
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[identifier] = value
	return nil
}
