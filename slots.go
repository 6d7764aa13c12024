package selfobject

import "sort"

// SetSlot sets the value of a slot on the object, overwriting any previous
// value. There is no constraint on value; reassigning a slot that is marked
// as a parent silently redirects the inheritance edge to the new value.
func (o *Object) SetSlot(name string, value *Object) {
	if o.Slots == nil {
		o.Slots = Slots{}
	}
	o.Slots[name] = value
}

// MakeParent marks an existing slot as an inheritance parent. If no slot
// with the given name exists, or the name is already marked, this is a
// silent no-op. Parents are searched in the order they were marked.
func (o *Object) MakeParent(name string) {
	if _, ok := o.Slots[name]; !ok {
		return
	}
	for _, p := range o.Parents {
		if p == name {
			return
		}
	}
	o.Parents = append(o.Parents, name)
}

// SetParentSlot sets a slot and marks it as a parent, the usual way to add
// an inheritance edge together with its value in one step.
func (o *Object) SetParentSlot(name string, value *Object) {
	o.SetSlot(name, value)
	o.MakeParent(name)
}

// GetLocalSlot checks only the object's own slots for a slot, never its
// ancestors, and never evaluates the result. A slot that exists but holds
// nil is reported as absent.
func (o *Object) GetLocalSlot(name string) (*Object, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.Slots[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SlotNames returns the names of the object's own slots, sorted.
func (o *Object) SlotNames() []string {
	names := make([]string, 0, len(o.Slots))
	for name := range o.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParentNames returns the names of the object's parent slots in mark order.
func (o *Object) ParentNames() []string {
	return append([]string(nil), o.Parents...)
}
