package selfobject

// A Native is a built-in computation attached to an object. It is the sole
// extension point for operations the object graph cannot express itself,
// such as arithmetic and comparisons.
//
// Compute receives the object carrying it and the object bound to that
// object's "parameter" slot, or nil if the slot is unbound. A Native must
// be pure with respect to the engine: it may read self's slots, but it
// interacts with the rest of the graph only through its return value.
type Native interface {
	Compute(self, param *Object) (*Object, error)
}

// NativeFunc adapts an ordinary function to the Native interface.
type NativeFunc func(self, param *Object) (*Object, error)

// Compute calls f.
func (f NativeFunc) Compute(self, param *Object) (*Object, error) {
	return f(self, param)
}

// Evaluate produces the object's result. The object's Kind governs what
// happens:
//
// A primitive evaluates to an independent copy, so boxed values never alias
// their source. A native evaluates to whatever its computation returns. A
// chain evaluates by sending each message in order, each to the result of
// the previous one, starting from a copy of the object; a message that no
// slot on the current receiver or its ancestors can answer aborts the whole
// chain with a *MessageNotFoundError and no partial result. A plain object
// evaluates to itself, by identity, not by copy.
func (o *Object) Evaluate() (*Object, error) {
	if o == nil {
		return nil, nil
	}
	switch o.Kind() {
	case KindPrimitive:
		return o.Copy(), nil
	case KindNative:
		param, _ := o.GetLocalSlot(ParameterSlot)
		return o.Native.Compute(o, param)
	case KindChain:
		current := o.Copy()
		for _, name := range o.Messages {
			next, err := current.Dispatch(name)
			if err != nil {
				return nil, err
			}
			if next == nil {
				return nil, &MessageNotFoundError{Message: name}
			}
			current = next
		}
		return current, nil
	}
	return o, nil
}
