package cfsm

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
)

// HandleSize is the number of bytes Save writes and Load reads: the fixed
// width of one serialized state handle.
const HandleSize = 8

// Machine is a finite state machine over a closed set of state types. It
// holds at most one current state handle; when unstarted or stopped it holds
// none. All structural configuration (the set, the allocation strategy, the
// declared transitions) is fixed before the machine runs.
//
// A Machine performs no internal synchronization and no operation on it
// blocks or performs I/O. Concurrent use of one machine from multiple
// goroutines is undefined unless the caller serializes every call; multiple
// independent machines may run on separate goroutines.
type Machine struct {
	set     *Set
	alloc   Allocator
	current State
}

// New creates a machine over the given closed set using the given allocation
// strategy. A nil allocator defaults to lazy allocation.
func New(set *Set, alloc Allocator) *Machine {
	if set == nil {
		panic(&ConfigurationError{Message: "nil state set"})
	}
	if alloc == nil {
		alloc = NewLazyAllocator(set)
	}
	return &Machine{set: set, alloc: alloc}
}

// Start places the machine in the Initial state: it obtains a handle from the
// active allocator and runs Initial's entry hook with data. Initial must be a
// member of the machine's set and the allocator must produce a handle for it;
// either failure panics, since the machine cannot silently run without a
// current state.
func Start[Initial State](m *Machine, data any) {
	id, ok := ID[Initial](m.set)
	if !ok {
		panic(&ConfigurationError{
			Message: fmt.Sprintf("initial state type %v not in set", reflect.TypeOf((*Initial)(nil)).Elem()),
		})
	}
	h := m.alloc.Obtain(id)
	if h == nil {
		panic(&AllocationError{ID: id, Message: "no handle for initial state"})
	}
	m.current = h
	h.OnEnter(data)
}

// Transition switches the machine from From to To along a declared edge.
//
// If the current state's actual type is not From (including when the machine
// is unstarted or stopped), Transition returns false and nothing changes: no
// hooks run, no handle moves. Otherwise the target handle is obtained first,
// so an allocation failure panics before any hook has run; on success the
// fixed ordering is exit(old), release(old), action, current = new,
// enter(new), and Transition returns true.
//
// A zero-value edge, or an edge declared on a different set than the
// machine's, panics with a *ConfigurationError.
func Transition[From, To State](m *Machine, e Edge[From, To], data any) bool {
	if e.set == nil {
		panic(&ConfigurationError{Message: "transition edge was never declared"})
	}
	if e.set != m.set {
		panic(&ConfigurationError{Message: "transition edge declared on a different state set"})
	}
	if _, ok := m.current.(From); !ok {
		return false
	}

	next := m.alloc.Obtain(e.to)
	if next == nil {
		panic(&AllocationError{ID: e.to, Message: "no handle for target state"})
	}

	old := m.current
	old.OnExit(data)
	m.alloc.Release(old)
	if e.action != nil {
		e.action(data)
	}
	m.current = next
	next.OnEnter(data)
	return true
}

// Stop runs the current state's exit hook with data, releases the current
// handle per the allocation strategy's ownership rules, and tears down any
// engine-owned pool. A machine that is not started is left untouched, so
// calling Stop twice is safe. Start is required before the machine operates
// again.
func (m *Machine) Stop(data any) {
	if m.current == nil {
		return
	}
	m.current.OnExit(data)
	m.alloc.Release(m.current)
	m.current = nil
	m.alloc.Teardown()
}

// State returns the current state handle, or nil when the machine is
// unstarted or stopped. The handle is a read-only view; mutating the machine
// through it is the caller's responsibility.
func (m *Machine) State() State {
	return m.current
}

// Started reports whether the machine holds a current state.
func (m *Machine) Started() bool {
	return m.current != nil
}

// StateAs returns the current state narrowed to T if the actual current type
// is T. Used for introspection and guards without mutating anything.
func StateAs[T State](m *Machine) (T, bool) {
	t, ok := m.current.(T)
	return t, ok
}

// String returns a short description of the machine's current state.
func (m *Machine) String() string {
	if m.current == nil {
		return "Machine { State = <none> }"
	}
	return fmt.Sprintf("Machine { State = %s }", stateName(reflect.TypeOf(m.current)))
}

// vault is the process-wide table backing Save and Load. Save parks the
// detached handle here and the buffer carries only its key, so a serialized
// handle is meaningless outside the process that wrote it. The vault is
// shared by every machine in the process, so unlike the machines themselves
// it guards its map.
var vault = struct {
	mu   sync.Mutex
	next uint64
	m    map[uint64]State
}{next: 1, m: make(map[uint64]State)}

// Save detaches the current state handle into buf and returns the number of
// bytes written: HandleSize, or 0 when buf is shorter than that, in which
// case nothing happens. After a successful Save the machine no longer
// references the handle — ownership travels with the buffer, so a machine
// stopped or discarded after Save does not release the handle a second time.
//
// The encoding is an opaque in-memory handoff, not a portable format: it is
// valid only within this process and only for a machine built over the same
// set configuration. Hooks do not run.
func (m *Machine) Save(buf []byte) int {
	if len(buf) < HandleSize {
		return 0
	}
	var key uint64
	if m.current != nil {
		vault.mu.Lock()
		key = vault.next
		vault.next++
		vault.m[key] = m.current
		vault.mu.Unlock()
	}
	binary.LittleEndian.PutUint64(buf, key)
	m.current = nil
	return HandleSize
}

// Load installs a handle previously written by Save as the machine's current
// state, without running any hooks, and returns the number of bytes read:
// HandleSize, or 0 when buf is shorter than that, in which case nothing
// happens. Each saved handle can be loaded once; a buffer that does not hold
// a saved handle panics with a *ConfigurationError.
func (m *Machine) Load(buf []byte) int {
	if len(buf) < HandleSize {
		return 0
	}
	key := binary.LittleEndian.Uint64(buf)
	if key == 0 {
		m.current = nil
		return HandleSize
	}
	vault.mu.Lock()
	h, ok := vault.m[key]
	if ok {
		delete(vault.m, key)
	}
	vault.mu.Unlock()
	if !ok {
		panic(&ConfigurationError{Message: "load buffer does not hold a saved state handle"})
	}
	m.current = h
	return HandleSize
}
