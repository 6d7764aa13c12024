package selfobject

// A MessageNotFoundError reports a message in a chain that no slot on the
// receiver or any of its ancestors could answer. The chain is abandoned;
// no partial result accompanies the error.
type MessageNotFoundError struct {
	// Message is the message name that failed to resolve.
	Message string
}

// Error returns the error message.
func (e *MessageNotFoundError) Error() string {
	return "message not found: " + e.Message
}
