package ir

// NodeCast returns the node as the concrete variant T when both the
// operator kind and the dynamic type match. The second result is false
// for nil nodes, kind mismatches, and type mismatches; NodeCast never
// panics and never returns a partially valid reference.
func NodeCast[T Node](n Node, kind OpKind) (T, bool) {
	var zero T
	if n == nil || n.Kind() != kind {
		return zero, false
	}
	v, ok := n.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
