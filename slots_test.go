package selfobject_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wualvin2021/SelfObject"
	"github.com/wualvin2021/SelfObject/testutils"
)

// TestMakeParent tests that parent marking only applies to existing slots,
// keeps mark order, and never duplicates a name.
func TestMakeParent(t *testing.T) {
	o := selfobject.New()
	o.SetSlot("b", selfobject.New())
	o.SetSlot("c", selfobject.New())

	o.MakeParent("missing")
	if diff := cmp.Diff([]string(nil), o.ParentNames()); diff != "" {
		t.Errorf("marking a missing slot changed parents (-want +have):\n%s", diff)
	}

	o.MakeParent("b")
	o.MakeParent("c")
	o.MakeParent("b")
	if diff := cmp.Diff([]string{"b", "c"}, o.ParentNames()); diff != "" {
		t.Errorf("wrong parents (-want +have):\n%s", diff)
	}
}

// TestSetParentSlot tests that the combined operation assigns and marks in
// one step.
func TestSetParentSlot(t *testing.T) {
	p := selfobject.New()
	p.SetSlot("x", testutils.Number(1))
	o := selfobject.New()
	o.SetParentSlot("p", p)
	if diff := cmp.Diff([]string{"p"}, o.ParentNames()); diff != "" {
		t.Errorf("wrong parents (-want +have):\n%s", diff)
	}
	testutils.CheckNumber(t, testutils.MustDispatch(t, o, "x"), 1)
}

// TestParentSlotReassignment tests the permissive reassignment rule: a
// parent marker silently follows a reassigned slot, with no revalidation.
func TestParentSlotReassignment(t *testing.T) {
	old := selfobject.New()
	old.SetSlot("x", testutils.Number(1))
	o := selfobject.New()
	o.SetParentSlot("p", old)

	next := selfobject.New()
	next.SetSlot("x", testutils.Number(2))
	o.SetSlot("p", next)

	if diff := cmp.Diff([]string{"p"}, o.ParentNames()); diff != "" {
		t.Errorf("reassignment disturbed parents (-want +have):\n%s", diff)
	}
	testutils.CheckNumber(t, testutils.MustDispatch(t, o, "x"), 2)
}

// TestGetLocalSlot tests that local lookup never consults ancestors.
func TestGetLocalSlot(t *testing.T) {
	p := selfobject.New()
	p.SetSlot("x", testutils.Number(1))
	o := selfobject.New()
	o.SetParentSlot("p", p)
	if v, ok := o.GetLocalSlot("x"); ok {
		t.Errorf("local lookup reached an ancestor slot: %v", v)
	}
	if _, ok := o.GetLocalSlot("p"); !ok {
		t.Error("local lookup missed an own slot")
	}
}

// TestSlotNames tests that slot name listing is sorted and complete.
func TestSlotNames(t *testing.T) {
	o := selfobject.New()
	o.SetSlot("c", selfobject.New())
	o.SetSlot("a", selfobject.New())
	o.SetSlot("b", selfobject.New())
	if diff := cmp.Diff([]string{"a", "b", "c"}, o.SlotNames()); diff != "" {
		t.Errorf("wrong slot names (-want +have):\n%s", diff)
	}
}
