package cfsm

import (
	"fmt"
	"reflect"
)

// RegistrationError reports misuse of state-type registration, such as
// registering the same concrete type twice or registering with a nil
// constructor. It is used as a panic value: registration happens during
// program initialization and a malformed closed set cannot be recovered from.
type RegistrationError struct {
	Type    reflect.Type
	Message string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("cfsm: %s (state type %v)", e.Message, e.Type)
}

// DeclarationError reports a transition declared over a state type that is
// not a member of the closed set, or a (From, To) pair declared twice. Like
// RegistrationError it is used as a panic value at declaration time.
type DeclarationError struct {
	From    reflect.Type
	To      reflect.Type
	Message string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("cfsm: %s (transition %v -> %v)", e.Message, e.From, e.To)
}

// AllocationError reports an allocator that failed to produce a handle for a
// requested state type during Start or Transition. This indicates a caller
// configuration error (undersized external pool, mismatched identifier space)
// and is raised as a panic: the machine cannot continue without a current
// state without corrupting its invariant.
type AllocationError struct {
	ID      TypeID
	Message string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cfsm: %s (type id %d)", e.Message, e.ID)
}

// ConfigurationError reports a machine driven with tokens or handles from a
// different configuration: an undeclared (zero-value) edge, an edge declared
// on another set, or a Load buffer that does not hold a saved handle. Used as
// a panic value.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "cfsm: " + e.Message
}
