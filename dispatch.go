package selfobject

import "github.com/zephyrtronium/contains"

// ParameterSlot is the conventional slot name through which parameterized
// dispatch passes an argument to the dispatched object.
const ParameterSlot = "parameter"

// Dispatch resolves a message name against the receiver and returns the
// evaluation of the matching slot. Resolution checks the receiver's own
// slots first, then searches the parent graph in level order: a direct
// parent's slot always wins over a grandparent's, and among parents at the
// same depth the one marked first wins. A visited set keyed by object
// identity guarantees termination on cyclic and diamond-shaped graphs.
//
// If no slot matches, both returned values are nil; a miss is a sentinel,
// not a failure. A non-nil error arises only from evaluating the matched
// slot.
func (o *Object) Dispatch(name string) (*Object, error) {
	v, ok := o.resolve(name)
	if !ok {
		return nil, nil
	}
	return v.Evaluate()
}

// DispatchWith resolves name exactly as Dispatch does, but evaluates a copy
// of the matching slot object with param bound to the copy's "parameter"
// slot. The shared object behind the slot is never mutated; only the
// transient copy carries the binding, so repeated calls with different
// parameters cannot interfere with each other through a shared prototype.
//
// If no slot matches, both returned values are nil.
func (o *Object) DispatchWith(name string, param *Object) (*Object, error) {
	v, ok := o.resolve(name)
	if !ok {
		return nil, nil
	}
	c := v.Copy()
	c.SetSlot(ParameterSlot, param)
	return c.Evaluate()
}

// resolve finds the object a message name refers to, unevaluated: a direct
// lookup, then a breadth-first walk of the parent graph with parents
// enqueued in mark order. The visited set holds every dequeued object, so
// shared ancestors are checked once. Slots holding nil are treated as
// absent and the search continues past them.
func (o *Object) resolve(name string) (*Object, bool) {
	if o == nil {
		return nil, false
	}
	if v, ok := o.GetLocalSlot(name); ok {
		return v, true
	}
	queue := make([]*Object, 0, len(o.Parents))
	for _, p := range o.Parents {
		queue = append(queue, o.Slots[p])
	}
	seen := contains.Set{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil || !seen.Add(cur.UniqueID()) {
			continue
		}
		if v, ok := cur.GetLocalSlot(name); ok {
			return v, true
		}
		for _, p := range cur.Parents {
			queue = append(queue, cur.Slots[p])
		}
	}
	return nil, false
}
