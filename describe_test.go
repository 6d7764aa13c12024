package selfobject_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wualvin2021/SelfObject"
	"github.com/wualvin2021/SelfObject/testutils"
)

func describeTarget() *selfobject.Object {
	o := selfobject.NewNumber(5)
	o.SetSlot("b", selfobject.New())
	o.SetParentSlot("a", selfobject.New())
	o.Messages = []string{"m1", "m2"}
	return o
}

// TestSnapshot tests the structured form of the diagnostic snapshot.
func TestSnapshot(t *testing.T) {
	want := selfobject.Snapshot{
		Slots:    []string{"a", "b"},
		Parents:  []string{"a"},
		Messages: []string{"m1", "m2"},
		Value:    5.0,
	}
	if diff := cmp.Diff(want, describeTarget().Snapshot()); diff != "" {
		t.Errorf("wrong snapshot (-want +have):\n%s", diff)
	}
}

// TestDescribe tests that the one-line snapshot mentions slot names, parent
// names, the primitive value, and the message chain, but no slot values.
func TestDescribe(t *testing.T) {
	s := describeTarget().Describe()
	for _, want := range []string{"slots(a, b)", "parents(a)", "value(5)", "messages(m1 m2)"} {
		if !strings.Contains(s, want) {
			t.Errorf("describe output %q lacks %q", s, want)
		}
	}
	if strings.Contains(s, "native") {
		t.Errorf("describe output %q claims a native computation", s)
	}
	n := selfobject.NewNative(testutils.Increment().Native).Describe()
	if !strings.Contains(n, "native") {
		t.Errorf("describe output %q does not mention the native computation", n)
	}
}

// TestDescribeYAML tests the YAML rendering of a snapshot.
func TestDescribeYAML(t *testing.T) {
	out, err := describeTarget().DescribeYAML()
	if err != nil {
		t.Fatalf("could not render snapshot: %v", err)
	}
	for _, want := range []string{"slots:", "- a", "- b", "parents:", "messages:", "- m1", "value: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output %q lacks %q", out, want)
		}
	}
}

// TestDescribePure tests that describing an object does not change it.
func TestDescribePure(t *testing.T) {
	o := describeTarget()
	before := o.Snapshot()
	_ = o.Describe()
	if _, err := o.DescribeYAML(); err != nil {
		t.Fatalf("could not render snapshot: %v", err)
	}
	if diff := cmp.Diff(before, o.Snapshot()); diff != "" {
		t.Errorf("describe mutated the object (-want +have):\n%s", diff)
	}
}
