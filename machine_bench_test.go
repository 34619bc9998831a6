package cfsm_test

import (
	"testing"

	"github.com/cfsm-go/cfsm"
)

// The benchmark states have empty hooks so the measurement is dispatch and
// allocation, not caller work.
type idleA struct{ _ byte }

func (*idleA) OnEnter(data any) {}
func (*idleA) OnExit(data any)  {}

type idleB struct{ _ byte }

func (*idleB) OnEnter(data any) {}
func (*idleB) OnExit(data any)  {}

type benchGraph struct {
	set *cfsm.Set
	ab  cfsm.Edge[*idleA, *idleB]
	ba  cfsm.Edge[*idleB, *idleA]
}

func newBenchGraph() benchGraph {
	set := cfsm.NewSet()
	cfsm.Register(set, func() *idleA { return &idleA{} })
	cfsm.Register(set, func() *idleB { return &idleB{} })
	return benchGraph{
		set: set,
		ab:  cfsm.Declare[*idleA, *idleB](set, nil),
		ba:  cfsm.Declare[*idleB, *idleA](set, nil),
	}
}

func benchmarkTransitions(b *testing.B, g benchGraph, alloc cfsm.Allocator) {
	m := cfsm.New(g.set, alloc)
	cfsm.Start[*idleA](m, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			cfsm.Transition(m, g.ab, nil)
		} else {
			cfsm.Transition(m, g.ba, nil)
		}
	}
}

func BenchmarkTransitionLazy(b *testing.B) {
	g := newBenchGraph()
	benchmarkTransitions(b, g, cfsm.NewLazyAllocator(g.set))
}

func BenchmarkTransitionExternalPool(b *testing.B) {
	g := newBenchGraph()
	benchmarkTransitions(b, g, cfsm.NewExternalPool([]cfsm.State{&idleA{}, &idleB{}}))
}

func BenchmarkTransitionInternalPool(b *testing.B) {
	g := newBenchGraph()
	benchmarkTransitions(b, g, cfsm.NewInternalPool(g.set))
}
