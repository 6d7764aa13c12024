package selfobject

// Slots maps slot names to the objects they reference. Slot values are
// shared, non-owning references: the same object may appear in any number
// of slot maps, including its own.
type Slots map[string]*Object

// An Object is a node in the object graph. It is a plain data holder; all
// behavior lives in the evaluator and the resolver.
//
// An object may legally carry any combination of a primitive payload, a
// native computation, and a message chain. Which one governs evaluation is
// decided by Kind, in a fixed priority order.
type Object struct {
	// Slots is the set of named references this object holds.
	Slots Slots
	// Parents lists the names of slots marked as inheritance parents, in
	// the order they were marked. When a direct lookup misses, the objects
	// those slots refer to are searched breadth-first, and the mark order
	// here is the tie-break order among parents at the same depth.
	Parents []string
	// Messages is the ordered sequence of messages the object sends to
	// itself when evaluated.
	Messages []string
	// Value is the object's primitive payload, treated as immutable. A
	// non-nil Value marks the object as a boxed value.
	Value interface{}
	// Native is the object's built-in computation, if any.
	Native Native
}

// Kind identifies which of an object's facets governs its evaluation.
type Kind int

const (
	// KindPlain is an object with no primitive, native, or messages. It
	// evaluates to itself.
	KindPlain Kind = iota
	// KindPrimitive is a boxed value. It evaluates to an independent copy.
	KindPrimitive
	// KindNative is an object carrying a built-in computation.
	KindNative
	// KindChain is an object carrying a message chain.
	KindChain
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindPrimitive:
		return "primitive"
	case KindNative:
		return "native"
	case KindChain:
		return "chain"
	}
	return "invalid"
}

// Kind reports the facet that governs evaluation of the object. Facets are
// checked in a fixed priority order, primitive first, then native, then
// chain, so an object carrying several facets still evaluates
// deterministically.
func (o *Object) Kind() Kind {
	switch {
	case o.Value != nil:
		return KindPrimitive
	case o.Native != nil:
		return KindNative
	case len(o.Messages) > 0:
		return KindChain
	}
	return KindPlain
}

// New creates an empty plain object.
func New() *Object {
	return &Object{Slots: Slots{}}
}

// NewPrimitive creates an object boxing the given primitive payload.
func NewPrimitive(value interface{}) *Object {
	return &Object{Slots: Slots{}, Value: value}
}

// NewNumber creates an object boxing a number.
func NewNumber(value float64) *Object {
	return NewPrimitive(value)
}

// NewNative creates an object whose evaluation invokes the given native
// computation.
func NewNative(fn Native) *Object {
	return &Object{Slots: Slots{}, Native: fn}
}

// NewChain creates an object that sends the given messages to itself, in
// order, when evaluated.
func NewChain(messages ...string) *Object {
	return &Object{Slots: Slots{}, Messages: messages}
}

// Copy returns a structurally independent shallow clone. The clone's slot
// map, parent list, and message list are new containers with the same
// contents; the objects they refer to are shared with the receiver, so
// mutating a referenced sub-object remains visible through both. Value and
// Native are carried over as immutable payloads. Copy of nil is nil.
func (o *Object) Copy() *Object {
	if o == nil {
		return nil
	}
	slots := make(Slots, len(o.Slots))
	for name, value := range o.Slots {
		slots[name] = value
	}
	r := &Object{
		Slots:  slots,
		Value:  o.Value,
		Native: o.Native,
	}
	if len(o.Parents) > 0 {
		r.Parents = append([]string(nil), o.Parents...)
	}
	if len(o.Messages) > 0 {
		r.Messages = append([]string(nil), o.Messages...)
	}
	return r
}
