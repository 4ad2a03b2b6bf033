package npa

import (
	"fmt"

	"github.com/muurk/rpmlog/internal/logging"
)

// LookupFailed is returned by ClientResourceName when either hop misses.
const LookupFailed = "<lookup failed>"

// Warnings emitted on the diagnostics stream
const (
	warnNotLoaded  = "no NPA dump loaded.  All NPA name resolutions will fail."
	warnSilentMode = "switching to silent NPA lookup failure mode."
	warnMissFormat = "failed to match npa handle %s"
)

// Warner receives resolver diagnostics.
type Warner interface {
	Warn(msg string)
}

// State is the resolver mode.
type State int

const (
	// StateUnloaded means no dump has been loaded and no lookup has been made
	StateUnloaded State = iota
	// StateDegraded formats every handle as hex silently
	StateDegraded
	// StateLoaded resolves handles from dump tables
	StateLoaded
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateDegraded:
		return "degraded"
	case StateLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Resolver maps NPA handles to names. It is not safe for concurrent use; the
// decoder owns it for the length of a run.
type Resolver struct {
	state State
	warn  Warner

	clientNames     map[uint32]string
	clientResources map[uint32]uint32
	resourceNames   map[uint32]string
}

// NewResolver creates an unloaded resolver. w may be nil.
func NewResolver(w Warner) *Resolver {
	return &Resolver{
		state:           StateUnloaded,
		warn:            w,
		clientNames:     make(map[uint32]string),
		clientResources: make(map[uint32]uint32),
		resourceNames:   make(map[uint32]string),
	}
}

// State returns the current mode.
func (r *Resolver) State() State {
	return r.state
}

// Loaded reports whether a dump has been loaded.
func (r *Resolver) Loaded() bool {
	return r.state == StateLoaded
}

// ResourceName returns the name of a resource handle.
func (r *Resolver) ResourceName(handle uint32) string {
	if !r.ready() {
		return FormatHandle(handle)
	}
	return r.lookup(r.resourceNames, handle)
}

// ClientName returns the name of a client handle.
func (r *Resolver) ClientName(handle uint32) string {
	if !r.ready() {
		return FormatHandle(handle)
	}
	return r.lookup(r.clientNames, handle)
}

// ClientResourceName returns the name of the resource a client is bound to.
func (r *Resolver) ClientResourceName(handle uint32) string {
	if !r.ready() {
		return FormatHandle(handle)
	}

	resource, ok := r.clientResources[handle]
	if !ok {
		r.miss(handle)
		return LookupFailed
	}
	name, ok := r.resourceNames[resource]
	if !ok {
		r.miss(resource)
		return LookupFailed
	}
	return name
}

// ready reports whether table lookups apply. The first call on an unloaded
// resolver emits the not-loaded warning pair and degrades it for good.
func (r *Resolver) ready() bool {
	switch r.state {
	case StateLoaded:
		return true
	case StateUnloaded:
		r.emit(warnNotLoaded)
		r.emit(warnSilentMode)
		r.state = StateDegraded
		logging.LogStateChange("npa", StateUnloaded.String(), StateDegraded.String())
	}
	return false
}

func (r *Resolver) lookup(table map[uint32]string, handle uint32) string {
	if name, ok := table[handle]; ok {
		return name
	}
	r.miss(handle)
	return FormatHandle(handle)
}

func (r *Resolver) miss(handle uint32) {
	r.emit(fmt.Sprintf(warnMissFormat, FormatHandle(handle)))
}

func (r *Resolver) emit(msg string) {
	if r.warn != nil {
		r.warn.Warn(msg)
	}
}

// FormatHandle renders a handle as zero-padded hex, e.g. "0x002a00c4".
func FormatHandle(handle uint32) string {
	return fmt.Sprintf("0x%08x", handle)
}
