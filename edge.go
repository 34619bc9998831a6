package cfsm

import "reflect"

// Edge is the token proving that the directed transition From -> To was
// declared on a set. Transition demands one, and the only way to obtain a
// usable Edge is Declare, so a call site for an undeclared pair cannot be
// written. A zero-value Edge is detectable and treated as the fatal
// undeclared-transition path when it reaches Transition.
type Edge[From, To State] struct {
	set    *Set
	from   TypeID
	to     TypeID
	action Action
}

// Declare registers the directed transition From -> To on the set and returns
// its edge token. The action may be nil for a transition with no work of its
// own; when non-nil it runs between From's exit hook and To's entry hook.
//
// Both From and To must already be registered with the set, and each ordered
// pair may be declared at most once; violations panic with a
// *DeclarationError. Declaration is expected to happen during program
// initialization, alongside registration.
func Declare[From, To State](s *Set, action Action) Edge[From, To] {
	fromID, ok := ID[From](s)
	if !ok {
		panic(&DeclarationError{
			From:    reflect.TypeOf((*From)(nil)).Elem(),
			To:      reflect.TypeOf((*To)(nil)).Elem(),
			Message: "source state type not registered",
		})
	}
	toID, ok := ID[To](s)
	if !ok {
		panic(&DeclarationError{
			From:    reflect.TypeOf((*From)(nil)).Elem(),
			To:      reflect.TypeOf((*To)(nil)).Elem(),
			Message: "target state type not registered",
		})
	}
	key := edgeKey{from: fromID, to: toID}
	if _, dup := s.edges[key]; dup {
		panic(&DeclarationError{
			From:    reflect.TypeOf((*From)(nil)).Elem(),
			To:      reflect.TypeOf((*To)(nil)).Elem(),
			Message: "transition declared twice",
		})
	}
	s.edges[key] = action
	return Edge[From, To]{set: s, from: fromID, to: toID, action: action}
}
