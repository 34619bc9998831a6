package cfsm

import (
	"reflect"
	"sort"
)

// Set is a closed set of state types together with the transitions declared
// between them. A Set is the fixed, structural configuration of one or more
// machines: populate it during program initialization with Register and
// Declare, then drive machines built over it.
//
// A Set performs no internal synchronization. It is expected to be fully
// populated before any concurrent machine use begins; registering or
// declaring concurrently with machine operation is a caller error.
type Set struct {
	entries []setEntry
	byType  map[reflect.Type]TypeID
	edges   map[edgeKey]Action
}

type setEntry struct {
	typ  reflect.Type
	name string
	ctor func() State
}

type edgeKey struct {
	from, to TypeID
}

// NewSet creates an empty closed state-type set.
func NewSet() *Set {
	return &Set{
		byType: make(map[reflect.Type]TypeID),
		edges:  make(map[edgeKey]Action),
	}
}

// Register adds the concrete state type T to the set and assigns it the next
// dense TypeID, starting at zero. The constructor is used by the lazy
// allocator for every obtained handle and by the internal pool when it is
// first built.
//
// Each concrete type must be registered exactly once per set; registering it
// again panics with a *RegistrationError, as does a nil constructor.
// Identifiers depend on registration order, so callers that persist state
// across strategy switches must keep the order stable (see Machine.Save).
func Register[T State](s *Set, ctor func() T) TypeID {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if ctor == nil {
		panic(&RegistrationError{Type: typ, Message: "nil state constructor"})
	}
	if _, ok := s.byType[typ]; ok {
		panic(&RegistrationError{Type: typ, Message: "state type registered twice"})
	}
	id := TypeID(len(s.entries))
	s.entries = append(s.entries, setEntry{
		typ:  typ,
		name: stateName(typ),
		ctor: func() State { return ctor() },
	})
	s.byType[typ] = id
	return id
}

// ID returns the TypeID assigned to T, and whether T is a member of the set.
func ID[T State](s *Set) (TypeID, bool) {
	id, ok := s.byType[reflect.TypeOf((*T)(nil)).Elem()]
	return id, ok
}

// Len returns the number of registered state types.
func (s *Set) Len() int {
	return len(s.entries)
}

// construct builds a fresh instance of the state type with the given
// identifier, or returns nil if the identifier is out of range.
func (s *Set) construct(id TypeID) State {
	if id < 0 || int(id) >= len(s.entries) {
		return nil
	}
	return s.entries[id].ctor()
}

// stateName strips pointer indirections so *greenLight renders as greenLight.
func stateName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// StateInfo describes one registered state type.
type StateInfo struct {
	ID   TypeID
	Name string
}

// EdgeInfo describes one declared transition.
type EdgeInfo struct {
	From      StateInfo
	To        StateInfo
	HasAction bool
}

// SetInfo is a read-only snapshot of a set's registered states and declared
// transitions, for introspection and graph export.
type SetInfo struct {
	States []StateInfo
	Edges  []EdgeInfo
}

// Info returns a snapshot of the set: states in TypeID order and edges in
// (From, To) order. The snapshot does not track later declarations.
func (s *Set) Info() *SetInfo {
	info := &SetInfo{
		States: make([]StateInfo, len(s.entries)),
	}
	for i, e := range s.entries {
		info.States[i] = StateInfo{ID: TypeID(i), Name: e.name}
	}
	for key, action := range s.edges {
		info.Edges = append(info.Edges, EdgeInfo{
			From:      info.States[key.from],
			To:        info.States[key.to],
			HasAction: action != nil,
		})
	}
	sort.Slice(info.Edges, func(i, j int) bool {
		a, b := info.Edges[i], info.Edges[j]
		if a.From.ID != b.From.ID {
			return a.From.ID < b.From.ID
		}
		return a.To.ID < b.To.ID
	})
	return info
}
