//go:build nounsafe
// +build nounsafe

package selfobject

import "reflect"

// The default implementation of UniqueID uses unsafe.Pointer. If you can't
// use packages importing unsafe, build with -tags=nounsafe to select this
// implementation instead at a performance penalty during dispatch.

// UniqueID returns the object's address.
func (o *Object) UniqueID() uintptr {
	return reflect.ValueOf(o).Pointer()
}
