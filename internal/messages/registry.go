package messages

import (
	"fmt"
	"sort"
	"sync"

	"github.com/muurk/rpmlog/internal/target"
)

// Symbols resolves NPA handles. *npa.Resolver implements it.
type Symbols interface {
	ResourceName(handle uint32) string
	ClientName(handle uint32) string
	ClientResourceName(handle uint32) string
}

// Context carries the lookup tables renderers read from.
type Context struct {
	Profile *target.Profile
	Symbols Symbols
}

// Payload is the message specific part of a record.
type Payload []uint32

// need checks that at least n words are present.
func (p Payload) need(n int) error {
	if len(p) < n {
		return &PayloadError{Need: n, Have: len(p)}
	}
	return nil
}

// RenderFunc turns a payload into message text.
type RenderFunc func(ctx *Context, p Payload) (string, error)

// Group classifies entries by id range.
type Group int

const (
	GroupRPM Group = iota
	GroupNPA
	GroupRegulation
)

// String returns the group name
func (g Group) String() string {
	switch g {
	case GroupRPM:
		return "rpm"
	case GroupNPA:
		return "npa"
	case GroupRegulation:
		return "regulation"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// Entry describes one message id.
type Entry struct {
	Opcode   uint32
	Name     string
	Group    Group
	MinWords int // payload words read on every path
	Render   RenderFunc
}

// Registry maps message ids to entries.
type Registry struct {
	entries map[uint32]*Entry
	order   []uint32
}

// NewRegistry builds a registry from entries. Two entries with the same id
// produce a *DuplicateOpcodeError.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make(map[uint32]*Entry, len(entries)),
		order:   make([]uint32, 0, len(entries)),
	}
	for i := range entries {
		e := entries[i]
		if prev, ok := r.entries[e.Opcode]; ok {
			return nil, &DuplicateOpcodeError{Opcode: e.Opcode, First: prev.Name, Second: e.Name}
		}
		if e.Render == nil {
			return nil, fmt.Errorf("message id 0x%x (%s) has no renderer", e.Opcode, e.Name)
		}
		r.entries[e.Opcode] = &e
		r.order = append(r.order, e.Opcode)
	}
	sort.Slice(r.order, func(i, j int) bool { return r.order[i] < r.order[j] })
	return r, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
	defaultRegistryErr  error
)

// Default returns the registry holding every known RPM message. It is built
// once; later calls return the same instance.
func Default() (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		var all []Entry
		all = append(all, rpmEntries()...)
		all = append(all, npaEntries()...)
		all = append(all, regulationEntries()...)
		defaultRegistry, defaultRegistryErr = NewRegistry(all...)
		if defaultRegistryErr != nil {
			defaultRegistryErr = fmt.Errorf("failed to build message registry: %w", defaultRegistryErr)
		}
	})
	return defaultRegistry, defaultRegistryErr
}

// Lookup returns the entry for an id.
func (r *Registry) Lookup(opcode uint32) (*Entry, bool) {
	e, ok := r.entries[opcode]
	return e, ok
}

// Render renders a payload with the entry registered for opcode.
func (r *Registry) Render(ctx *Context, opcode uint32, payload []uint32) (string, error) {
	e, ok := r.Lookup(opcode)
	if !ok {
		return "", &UnknownOpcodeError{Opcode: opcode}
	}

	p := Payload(payload)
	if err := p.need(e.MinWords); err != nil {
		return "", fmt.Errorf("%s: %w", e.Name, err)
	}

	text, err := e.Render(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Name, err)
	}
	return text, nil
}

// Entries returns every entry ordered by id.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.order))
	for i, op := range r.order {
		out[i] = r.entries[op]
	}
	return out
}

// Count returns the number of registered ids.
func (r *Registry) Count() int {
	return len(r.entries)
}
