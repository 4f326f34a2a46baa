package hsm

import "github.com/miyoosquare/square/internal/core"

// State is a single node in the state tree. It holds an identifier, a
// human-readable name and a set of optional lifecycle hooks. A nil hook is
// a permanent, legal condition - dispatch simply skips it.
//
// Parent and children are non-owning references maintained exclusively by
// the Machine's add/remove algorithms. Application code must never mutate
// them; the Machine's flat store is the single owner of every State.
type State struct {
	// ID is the hierarchical identifier. Immutable after creation.
	ID StateID

	// Name is a human-readable label used for diagnostics and menus.
	Name string

	// OnEnter runs when the machine transitions into this state.
	OnEnter func()

	// OnExit runs when the machine transitions away from this state, or
	// when the state (or an ancestor) is removed while current.
	OnExit func()

	// HandleEvent receives the per-frame input, once per frame, only while
	// this state is current.
	HandleEvent func(in core.InputFrame)

	// Update advances this state's logic by one tick.
	Update func()

	// Render draws this state into the screen buffer.
	Render func(dst *core.Screen)

	parent   *State
	children []*State
}

// NewState creates a detached state with no hooks and no links. It becomes
// part of a hierarchy when added to a Machine.
func NewState(id StateID, name string) *State {
	return &State{ID: id, Name: name}
}

// Parent returns the linked parent state, or nil for a root state or a
// state whose parent ID is not registered.
func (s *State) Parent() *State {
	return s.parent
}

// Children returns the linked child states. The returned slice is the
// machine-maintained backing slice; treat it as read-only.
func (s *State) Children() []*State {
	return s.children
}
