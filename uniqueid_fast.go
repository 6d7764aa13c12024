//go:build !nounsafe
// +build !nounsafe

package selfobject

import "unsafe"

// The address doubles as the identity that the resolver's visited set is
// keyed by, so plain struct literals participate in cycle detection without
// any registration step.

// UniqueID returns the object's address.
func (o *Object) UniqueID() uintptr {
	return uintptr(unsafe.Pointer(o))
}
