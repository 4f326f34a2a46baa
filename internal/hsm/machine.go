// Package hsm implements the hierarchical state machine that drives the
// engine's screens: a tree of named states addressed by integer paths
// (StateID), with optional per-state lifecycle hooks and a single current
// state receiving the per-frame dispatch.
//
// The Machine owns every State in a flat slice; parent/children fields on
// State are non-owning links rebuilt by the insertion and removal
// algorithms. Tree sizes are small and insertion happens at setup time, so
// the O(n) scans in Add/Get/GoTo are deliberate.
//
// The machine is not safe for concurrent use. The hosting platform drives
// it from a single event loop: HandleEvent, Update, Render, once per frame.
package hsm

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/miyoosquare/square/internal/core"
)

// NoneName is returned by CurrentName when no state is active.
const NoneName = "NONE"

var (
	// ErrDuplicateState is returned by Add when the ID is already registered.
	ErrDuplicateState = errors.New("hsm: duplicate state id")

	// ErrStateNotFound is returned by GoTo when the ID is not registered.
	ErrStateNotFound = errors.New("hsm: state not found")
)

// Machine owns a tree of states and routes per-frame dispatch to the one
// current state. The zero value is not usable; call New.
type Machine struct {
	states  []*State
	current *State
	logger  *log.Logger
}

// New creates an empty machine with no current state.
func New() *Machine {
	return &Machine{
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "hsm"}),
	}
}

// Add registers a state and links it into the hierarchy. It fails with
// ErrDuplicateState, leaving the machine unchanged, if the ID is taken.
//
// Linking works in both directions so insertion order does not matter:
// an existing state whose ID equals the new state's Parent() is linked as
// its parent, and any existing state whose Parent() equals the new ID is
// re-parented under it.
func (m *Machine) Add(s *State) error {
	if m.exists(s.ID) {
		m.logger.Error("state already exists", "id", s.ID.String())
		return fmt.Errorf("%w: %s", ErrDuplicateState, s.ID)
	}

	parentID := s.ID.Parent()
	for _, existing := range m.states {
		if existing.ID.Equal(parentID) {
			s.parent = existing
			existing.children = append(existing.children, s)
			break
		}
	}

	// Adopt states that were inserted before their parent.
	for _, existing := range m.states {
		if s.ID.IsParentOf(existing.ID) {
			existing.parent = s
			s.children = append(s.children, existing)
		}
	}

	m.states = append(m.states, s)
	return nil
}

// Define creates a named state, registers it and returns it for hook
// assignment. Shorthand for NewState followed by Add.
func (m *Machine) Define(id StateID, name string) (*State, error) {
	s := NewState(id, name)
	if err := m.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the registered state with the given ID.
func (m *Machine) Get(id StateID) (*State, bool) {
	for _, s := range m.states {
		if s.ID.Equal(id) {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of registered states.
func (m *Machine) Len() int {
	return len(m.states)
}

// States returns the registered states in insertion order. Read-only.
func (m *Machine) States() []*State {
	return m.states
}

func (m *Machine) exists(id StateID) bool {
	_, ok := m.Get(id)
	return ok
}

// GoTo transitions to the state with the given ID. The target is resolved
// first: a missing ID returns ErrStateNotFound and the machine is left
// fully unchanged, including the current state and its hooks. On success
// the outgoing state's OnExit fires, then the target becomes current and
// its OnEnter fires.
func (m *Machine) GoTo(id StateID) error {
	target, ok := m.Get(id)
	if !ok {
		m.logger.Error("state not found", "id", id.String())
		return fmt.Errorf("%w: %s", ErrStateNotFound, id)
	}

	if m.current != nil && m.current.OnExit != nil {
		m.current.OnExit()
	}

	m.current = target
	if target.OnEnter != nil {
		target.OnEnter()
	}
	return nil
}

// Remove deletes the state with the given ID together with its whole
// subtree. If the current state is the target or a link-reachable
// descendant of it, its OnExit fires and the machine is left with no
// current state. Removing an ID that is not registered is a no-op, so the
// call is idempotent.
func (m *Machine) Remove(id StateID) {
	target, ok := m.Get(id)
	if !ok {
		return
	}
	m.removeSubtree(target)
}

// removeSubtree removes s and its descendants depth-first. Traversal order
// comes from the non-owning child links; the actual erase always goes
// through the owning flat slice, matched by pointer identity.
func (m *Machine) removeSubtree(s *State) {
	// The children slice shrinks as each child unlinks itself, so walk a
	// snapshot.
	children := make([]*State, len(s.children))
	copy(children, s.children)
	for _, child := range children {
		m.removeSubtree(child)
	}

	if m.current == s {
		if s.OnExit != nil {
			s.OnExit()
		}
		m.current = nil
	}

	if s.parent != nil {
		s.parent.children = eraseState(s.parent.children, s)
		s.parent = nil
	}
	m.states = eraseState(m.states, s)
}

// RemoveAll drops every state and the current reference. This is a hard
// reset, not a transition: no exit hook fires. All parent/children links
// are cleared so no removed state keeps another alive.
func (m *Machine) RemoveAll() {
	for _, s := range m.states {
		s.parent = nil
		s.children = nil
	}
	m.states = nil
	m.current = nil
}

// Current returns the active state, or nil when none is active.
func (m *Machine) Current() *State {
	return m.current
}

// CurrentName returns the active state's name, or NoneName when no state
// is active.
func (m *Machine) CurrentName() string {
	if m.current == nil {
		return NoneName
	}
	return m.current.Name
}

// HandleEvent forwards the frame's input to the current state. A missing
// current state or a nil hook makes this a no-op.
func (m *Machine) HandleEvent(in core.InputFrame) {
	if m.current != nil && m.current.HandleEvent != nil {
		m.current.HandleEvent(in)
	}
}

// Update ticks the current state's logic. Only the current state runs;
// ancestors and siblings are never implicitly notified.
func (m *Machine) Update() {
	if m.current != nil && m.current.Update != nil {
		m.current.Update()
	}
}

// Render draws the current state into the screen buffer.
func (m *Machine) Render(dst *core.Screen) {
	if m.current != nil && m.current.Render != nil {
		m.current.Render(dst)
	}
}

// eraseState removes the first element of list that is p itself.
func eraseState(list []*State, p *State) []*State {
	for i, s := range list {
		if s == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
