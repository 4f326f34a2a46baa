package hsm

import (
	"strconv"
	"strings"
)

// StateID is a hierarchical identifier: an ordered path of integers locating
// a state in the state tree. {1} is a root-level state, {1, 1} is its child,
// {1, 1, 2} a grandchild. IDs are pure values - deriving a parent or child
// never mutates the receiver.
type StateID []int

// ID builds a StateID from its levels. Convenience for literal call sites:
//
//	game := hsm.ID(1, 1)
//	pause := game.Child(2) // {1, 1, 2}
func ID(levels ...int) StateID {
	return StateID(levels)
}

// Equal reports whether two IDs have identical levels, element-wise and in
// length. An empty ID only equals another empty ID.
func (id StateID) Equal(other StateID) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}

// Parent returns a copy of the ID with the last level removed. The parent of
// an empty ID is an empty ID.
func (id StateID) Parent() StateID {
	if len(id) == 0 {
		return nil
	}
	parent := make(StateID, len(id)-1)
	copy(parent, id[:len(id)-1])
	return parent
}

// IsParentOf reports whether child sits exactly one level below this ID:
// child must have exactly one more level, and every level of the receiver
// must match the corresponding prefix of child.
func (id StateID) IsParentOf(child StateID) bool {
	if len(id)+1 != len(child) {
		return false
	}
	for i := range id {
		if id[i] != child[i] {
			return false
		}
	}
	return true
}

// Child returns a copy of the ID with level i appended. Calls chain:
// ID(1).Child(1).Child(2) yields {1, 1, 2}.
func (id StateID) Child(i int) StateID {
	child := make(StateID, len(id), len(id)+1)
	copy(child, id)
	return append(child, i)
}

// String returns the dot-joined decimal form, e.g. "1.1.2". Diagnostics
// only; identity is Equal, not the string form.
func (id StateID) String() string {
	var sb strings.Builder
	for i, lvl := range id {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(lvl))
	}
	return sb.String()
}
