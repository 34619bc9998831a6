package cfsm

// Allocator produces and locates state-object handles for a machine. The
// three strategies differ only in where storage comes from and who owns the
// handles; the machine drives all of them through the same three operations.
//
// Obtain returns a handle for the requested type identifier, or nil when the
// strategy has no handle for it (out-of-range identifier, empty pool slot).
// Release gives back a superseded handle; it only has an effect for
// strategies under which the machine owns handles exclusively. Teardown
// releases engine-owned storage and must be idempotent.
type Allocator interface {
	Obtain(id TypeID) State
	Release(s State)
	Teardown()
}

// LazyAllocator constructs a brand-new instance of the requested state type
// on every Obtain, using the set's registered constructor. The machine owns
// each obtained handle exclusively and releases it when superseded.
type LazyAllocator struct {
	set *Set
}

// NewLazyAllocator creates a lazy allocator over the given set.
func NewLazyAllocator(set *Set) *LazyAllocator {
	return &LazyAllocator{set: set}
}

// Obtain constructs a fresh instance of the requested state type.
func (a *LazyAllocator) Obtain(id TypeID) State {
	return a.set.construct(id)
}

// Release drops the machine's exclusive reference; the collector reclaims the
// instance once nothing else holds it.
func (a *LazyAllocator) Release(s State) {}

// Teardown is a no-op: the lazy strategy keeps no storage of its own.
func (a *LazyAllocator) Teardown() {}

// ExternalPool indexes a caller-supplied, caller-owned slice of handles, one
// slot per registered state type, positioned by TypeID. The engine never
// releases these handles; their lifetime is managed entirely outside it.
//
// The slice must be indexed by identifiers from the same set the machine was
// built over. Obtain returns nil for an identifier outside the slice or for
// an empty slot, which the machine treats as a fatal configuration error.
type ExternalPool struct {
	pool []State
}

// NewExternalPool wraps a caller-owned slice of state handles.
func NewExternalPool(pool []State) *ExternalPool {
	return &ExternalPool{pool: pool}
}

// Obtain indexes the caller's slice by type identifier.
func (a *ExternalPool) Obtain(id TypeID) State {
	if id < 0 || int(id) >= len(a.pool) {
		return nil
	}
	return a.pool[id]
}

// Release is a no-op: the caller owns every handle in the pool.
func (a *ExternalPool) Release(s State) {}

// Teardown is a no-op: the caller owns the pool itself.
func (a *ExternalPool) Teardown() {}

// InternalPool owns a preallocated array of handles, one instance of every
// registered state type, built with the set's constructors on first Obtain.
// The pool, not the machine, owns the handles: they live until Teardown,
// which the machine invokes from Stop.
type InternalPool struct {
	set  *Set
	pool []State
}

// NewInternalPool creates an engine-owned pool over the given set. No state
// objects are constructed until the first Obtain.
func NewInternalPool(set *Set) *InternalPool {
	return &InternalPool{set: set}
}

// Obtain returns the pooled instance for the requested type identifier,
// building the whole pool on first use.
func (a *InternalPool) Obtain(id TypeID) State {
	if a.pool == nil {
		a.pool = make([]State, a.set.Len())
		for i := range a.pool {
			a.pool[i] = a.set.construct(TypeID(i))
		}
	}
	if id < 0 || int(id) >= len(a.pool) {
		return nil
	}
	return a.pool[id]
}

// Release is a no-op: handles belong to the pool, not the machine.
func (a *InternalPool) Release(s State) {}

// Teardown drops the pool. Idempotent: a second call is a no-op. The next
// Obtain after a teardown rebuilds the pool from scratch.
func (a *InternalPool) Teardown() {
	a.pool = nil
}
