// Package cfsm provides a finite state machine engine over a fixed, closed
// set of state types, for code where the state graph is known up front and
// dispatch must be deterministic: protocol handlers, device controllers,
// embedded-style control loops.
//
// States are concrete Go types implementing the State capability (an entry
// and an exit hook). Transitions are directed edges declared once, during
// program initialization; declaring an edge yields a typed token, and only a
// declared token can drive a transition, so an undeclared (From, To) pair has
// no call site that compiles. Allocation of state objects is pluggable: lazy
// per-transition construction, a caller-owned preallocated pool, or an
// engine-owned preallocated pool, all indexed by dense per-type identifiers.
//
// # Declaring a machine
//
// Register every state type with a Set, declare the legal edges, then build
// machines over the set:
//
//	set := cfsm.NewSet()
//	cfsm.Register(set, func() *Green { return &Green{} })
//	cfsm.Register(set, func() *Yellow { return &Yellow{} })
//
//	toYellow := cfsm.Declare[*Green, *Yellow](set, func(data any) {
//	    // runs between Green's exit hook and Yellow's entry hook
//	})
//
//	m := cfsm.New(set, nil) // nil allocator = lazy
//	cfsm.Start[*Green](m, data)
//	cfsm.Transition(m, toYellow, data)
//	m.Stop(data)
//
// # Allocation strategies
//
// The same set drives all three strategies, and type identifiers stay
// consistent across them:
//
//	m := cfsm.New(set, cfsm.NewLazyAllocator(set))
//	m := cfsm.New(set, cfsm.NewExternalPool([]cfsm.State{&Green{}, &Yellow{}}))
//	m := cfsm.New(set, cfsm.NewInternalPool(set))
//
// # Errors
//
// A Transition whose From does not match the actual current state returns
// false with no side effects. Configuration errors — a type outside the set,
// an allocator with no handle for a request, a foreign or zero-value edge —
// panic with typed values from this package, since continuing would leave the
// machine without exactly zero or one current state.
//
// # Concurrency
//
// The engine performs no locking. Serialize access to each machine
// externally; independent machines may run on separate goroutines, with any
// cross-machine coordination carried through the opaque data handle.
//
// # Graph export
//
// The graph subpackage renders a set's declared state graph:
//
//	dot := graph.DOT(set.Info())
package cfsm
