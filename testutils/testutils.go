// Package testutils provides helpers for testing object graphs in Go.
package testutils

import (
	"fmt"
	"testing"

	"github.com/wualvin2021/SelfObject"
)

// Number creates an object boxing n.
func Number(n float64) *selfobject.Object {
	return selfobject.NewNumber(n)
}

// Increment returns a native object that reads the number bound to its
// parameter slot and produces a fresh object boxing that number plus one.
func Increment() *selfobject.Object {
	return selfobject.NewNative(selfobject.NativeFunc(
		func(self, param *selfobject.Object) (*selfobject.Object, error) {
			if param == nil {
				return nil, fmt.Errorf("increment: no parameter bound")
			}
			n, ok := param.Value.(float64)
			if !ok {
				return nil, fmt.Errorf("increment: parameter is %v, not a number", param.Kind())
			}
			return selfobject.NewNumber(n + 1), nil
		}))
}

// MustDispatch dispatches name on obj and fails the test if the dispatch
// errors or misses.
func MustDispatch(t *testing.T, obj *selfobject.Object, name string) *selfobject.Object {
	t.Helper()
	r, err := obj.Dispatch(name)
	if err != nil {
		t.Fatalf("dispatch %q: %v", name, err)
	}
	if r == nil {
		t.Fatalf("dispatch %q: not found", name)
	}
	return r
}

// CheckSlots is a testing helper to check whether an object has exactly the
// slots we expect.
func CheckSlots(t *testing.T, obj *selfobject.Object, slots []string) {
	t.Helper()
	checked := make(map[string]bool, len(slots))
	for _, name := range slots {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			if _, ok := obj.GetLocalSlot(name); !ok {
				t.Fatal("no slot", name)
			}
		})
	}
	for name := range obj.Slots {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected slot", name)
			}
		})
	}
}

// CheckNumber is a testing helper to check that an object boxes the given
// number.
func CheckNumber(t *testing.T, obj *selfobject.Object, want float64) {
	t.Helper()
	if obj == nil {
		t.Fatalf("want object boxing %v, have nil", want)
	}
	n, ok := obj.Value.(float64)
	if !ok {
		t.Fatalf("want object boxing %v, have %s %v", want, obj.Kind(), obj.Value)
	}
	if n != want {
		t.Errorf("wrong boxed number: want %v, have %v", want, n)
	}
}
