package cfsm

// TypeID is the dense non-negative identifier assigned to a concrete state
// type when it is registered with a Set. Identifiers are assigned in
// registration order starting at zero and are used to index preallocated
// state storage in constant time.
type TypeID int

// State is the capability every state type must provide. The engine calls
// OnEnter exactly once each time the state becomes current and OnExit exactly
// once each time it stops being current.
//
// The data argument is an opaque handle passed through unmodified from the
// Start, Transition or Stop call that triggered the hook; its meaning is
// defined entirely by the caller. Hooks must not panic across the engine
// boundary: a panicking hook aborts the in-flight operation at an unspecified
// point and callers must not rely on partial-exit behavior.
type State interface {
	OnEnter(data any)
	OnExit(data any)
}

// Action is the callable attached to a declared transition. It runs after the
// source state's exit hook and before the target state's entry hook, with the
// same opaque data handle.
type Action func(data any)
