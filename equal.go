package stack

// Equal reports whether two stacks hold the same elements in the same order.
// Capacity does not take part in the comparison: a stack of capacity 3 and
// one of capacity 10 are equal when their occupied prefixes match.
func Equal[T comparable](a, b *Stack[T]) bool {
	return EqualSlice(a, b.Slice())
}

// EqualSlice reports whether the stack holds exactly the elements of vals,
// bottom to top.
func EqualSlice[T comparable](st *Stack[T], vals []T) bool {
	if st.len != len(vals) {
		return false
	}
	for i, v := range vals {
		if st.data[i] != v {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares elements with eq, allowing stacks of
// different element types.
func EqualFunc[T, U any](a *Stack[T], b *Stack[U], eq func(T, U) bool) bool {
	if a.len != b.len {
		return false
	}
	for i := 0; i < a.len; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}
