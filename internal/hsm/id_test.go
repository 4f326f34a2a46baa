package hsm

import "testing"

func TestIDEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b StateID
		want bool
	}{
		{"both empty", ID(), ID(), true},
		{"identical", ID(1, 1, 2), ID(1, 1, 2), true},
		{"different level", ID(1, 1, 2), ID(1, 1, 3), false},
		{"prefix is not equal", ID(1, 1), ID(1, 1, 2), false},
		{"longer vs shorter", ID(1, 1, 2), ID(1, 1), false},
		{"empty vs non-empty", ID(), ID(0), false},
	}

	for _, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%s: %v.Equal(%v) = %v, want %v", tc.name, tc.a, tc.b, got, tc.want)
		}
		// Equality is symmetric
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Errorf("%s: %v.Equal(%v) = %v, want %v", tc.name, tc.b, tc.a, got, tc.want)
		}
	}
}

func TestIDParent(t *testing.T) {
	id := ID(1, 1, 2)
	parent := id.Parent()

	if !parent.Equal(ID(1, 1)) {
		t.Errorf("Parent of %v = %v, want 1.1", id, parent)
	}
	// Deriving a parent must not mutate the receiver
	if !id.Equal(ID(1, 1, 2)) {
		t.Errorf("Parent() mutated receiver: %v", id)
	}
}

func TestIDParentOfEmpty(t *testing.T) {
	empty := ID()

	if got := empty.Parent(); len(got) != 0 {
		t.Errorf("Parent of empty ID = %v, want empty", got)
	}
	// Empty is not its own parent: lengths differ by 0, not 1
	if empty.Parent().IsParentOf(empty) {
		t.Error("empty ID must not be the parent of itself")
	}
}

func TestIDIsParentOf(t *testing.T) {
	cases := []struct {
		name   string
		parent StateID
		child  StateID
		want   bool
	}{
		{"direct child", ID(1, 1), ID(1, 1, 2), true},
		{"root child", ID(), ID(0), true},
		{"grandchild", ID(1), ID(1, 1, 2), false},
		{"sibling", ID(1, 1), ID(1, 2), false},
		{"same id", ID(1, 1), ID(1, 1), false},
		{"wrong prefix", ID(1, 2), ID(1, 1, 2), false},
		{"child of longer", ID(1, 1, 2), ID(1, 1), false},
	}

	for _, tc := range cases {
		if got := tc.parent.IsParentOf(tc.child); got != tc.want {
			t.Errorf("%s: %v.IsParentOf(%v) = %v, want %v", tc.name, tc.parent, tc.child, got, tc.want)
		}
	}
}

func TestIDParentChildRoundTrip(t *testing.T) {
	ids := []StateID{ID(), ID(0), ID(1, 1), ID(2, 7, 0)}

	for _, id := range ids {
		for _, i := range []int{0, 1, 42} {
			child := id.Child(i)
			if !child.Parent().Equal(id) {
				t.Errorf("%v.Child(%d).Parent() = %v, want %v", id, i, child.Parent(), id)
			}
			if !id.IsParentOf(child) {
				t.Errorf("%v.IsParentOf(%v) = false, want true", id, child)
			}
		}
		if len(id) > 0 && !id.Parent().IsParentOf(id) {
			t.Errorf("%v.Parent().IsParentOf(%v) = false, want true", id, id)
		}
	}
}

func TestIDChildDoesNotAliasParent(t *testing.T) {
	base := ID(1, 1)
	a := base.Child(1)
	b := base.Child(2)

	if !a.Equal(ID(1, 1, 1)) || !b.Equal(ID(1, 1, 2)) {
		t.Errorf("children share backing storage: a=%v b=%v", a, b)
	}
}

func TestIDString(t *testing.T) {
	cases := []struct {
		id   StateID
		want string
	}{
		{ID(), ""},
		{ID(0), "0"},
		{ID(1, 1, 2), "1.1.2"},
		{ID(10, 0, 3), "10.0.3"},
	}

	for _, tc := range cases {
		if got := tc.id.String(); got != tc.want {
			t.Errorf("String(%v) = %q, want %q", []int(tc.id), got, tc.want)
		}
	}
}
