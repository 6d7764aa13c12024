/*
Package selfobject implements a minimal prototype-based object model.

An Object holds named references to other objects in its slots. Any slot may
additionally be marked as a parent, making the object it refers to part of
the receiver's inheritance graph: when a message cannot be answered by a
direct slot, the parent graph is searched breadth-first, with a visited set
so that cyclic and diamond-shaped graphs terminate. Objects may also carry a
primitive payload, a native computation, or an ordered chain of messages to
send to themselves; evaluation picks exactly one of these in a fixed
priority order.

Graphs are built through the mutation API and evaluated on demand:

	n := selfobject.NewNumber(5)
	inc := selfobject.NewNative(selfobject.NativeFunc(
		func(self, param *selfobject.Object) (*selfobject.Object, error) {
			return selfobject.NewNumber(param.Value.(float64) + 1), nil
		}))
	n.SetSlot("increment", inc)
	r, err := n.DispatchWith("increment", n)
	// r.Value == 6.0

Evaluation results are independent shallow copies where the model calls for
value semantics, so boxed values never alias their source. The engine is
synchronous and single-threaded; a host running evaluations concurrently
over shared objects must serialize mutation and traversal itself.
*/
package selfobject
