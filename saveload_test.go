package cfsm_test

import (
	"reflect"
	"testing"

	"github.com/cfsm-go/cfsm"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	set, edges := newTestSet()
	m := cfsm.New(set, nil)
	tr := &trace{}

	cfsm.Start[*stateA](m, tr)
	if !cfsm.Transition(m, edges.ab, tr) {
		t.Fatal("transition A->B failed")
	}

	buf := make([]byte, cfsm.HandleSize)
	if n := m.Save(buf); n != cfsm.HandleSize {
		t.Fatalf("Save wrote %d bytes, expected %d", n, cfsm.HandleSize)
	}
	if m.Started() {
		t.Error("machine still references the handle after Save")
	}

	fresh := cfsm.New(set, nil)
	if n := fresh.Load(buf); n != cfsm.HandleSize {
		t.Fatalf("Load read %d bytes, expected %d", n, cfsm.HandleSize)
	}
	if _, ok := cfsm.StateAs[*stateB](fresh); !ok {
		t.Fatalf("loaded machine reports %v, expected *stateB", fresh.State())
	}

	// The loaded machine transitions exactly as the pre-save one would.
	tr.events = nil
	if !cfsm.Transition(fresh, edges.ba, tr) {
		t.Fatal("transition B->A failed after load")
	}
	want := []string{"exit B", "action B->A", "enter A"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("expected %v, got %v", want, tr.events)
	}
}

func TestLoadRunsNoHooks(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)
	tr := &trace{}

	cfsm.Start[*stateA](m, tr)
	buf := make([]byte, cfsm.HandleSize)
	m.Save(buf)

	tr.events = nil
	fresh := cfsm.New(set, nil)
	fresh.Load(buf)
	if len(tr.events) != 0 {
		t.Errorf("Load ran hooks: %v", tr.events)
	}
}

func TestSaveUndersizedBuffer(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)
	cfsm.Start[*stateA](m, nil)

	if n := m.Save(make([]byte, cfsm.HandleSize-1)); n != 0 {
		t.Errorf("Save into undersized buffer wrote %d bytes, expected 0", n)
	}
	if n := m.Save(nil); n != 0 {
		t.Errorf("Save into nil buffer wrote %d bytes, expected 0", n)
	}
	// The no-op save leaves the machine intact.
	if !m.Started() {
		t.Error("undersized Save detached the current state")
	}
}

func TestLoadUndersizedBuffer(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)

	if n := m.Load(make([]byte, cfsm.HandleSize-1)); n != 0 {
		t.Errorf("Load from undersized buffer read %d bytes, expected 0", n)
	}
	if n := m.Load(nil); n != 0 {
		t.Errorf("Load from nil buffer read %d bytes, expected 0", n)
	}
}

func TestSaveOfStoppedMachine(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)
	buf := make([]byte, cfsm.HandleSize)

	// No current state: the saved handle is empty, and loading it installs none.
	if n := m.Save(buf); n != cfsm.HandleSize {
		t.Fatalf("Save wrote %d bytes, expected %d", n, cfsm.HandleSize)
	}
	fresh := cfsm.New(set, nil)
	if n := fresh.Load(buf); n != cfsm.HandleSize {
		t.Fatalf("Load read %d bytes, expected %d", n, cfsm.HandleSize)
	}
	if fresh.Started() {
		t.Error("loading an empty handle started the machine")
	}
}

func TestStopAfterSaveRunsNoHooks(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)
	tr := &trace{}

	cfsm.Start[*stateA](m, tr)
	buf := make([]byte, cfsm.HandleSize)
	m.Save(buf)

	// Ownership moved into the buffer: stopping the saved-from machine must
	// not run the exit hook or release the handle.
	m.Stop(tr)
	want := []string{"enter A"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("Stop after Save ran hooks: %v", tr.events)
	}
}

func TestLoadForeignBufferPanics(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)
	buf := []byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef}

	defer func() {
		if _, ok := recover().(*cfsm.ConfigurationError); !ok {
			t.Error("expected *ConfigurationError panic for a buffer holding no saved handle")
		}
	}()
	m.Load(buf)
}

func TestSavedHandleLoadsOnlyOnce(t *testing.T) {
	set, _ := newTestSet()
	m := cfsm.New(set, nil)
	cfsm.Start[*stateA](m, nil)

	buf := make([]byte, cfsm.HandleSize)
	m.Save(buf)

	first := cfsm.New(set, nil)
	first.Load(buf)

	second := cfsm.New(set, nil)
	defer func() {
		if _, ok := recover().(*cfsm.ConfigurationError); !ok {
			t.Error("expected *ConfigurationError panic for a second load of the same handle")
		}
	}()
	second.Load(buf)
}
