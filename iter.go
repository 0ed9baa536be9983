package stack

import "iter"

// Values returns an iterator over the stack's elements, bottom to top.
// The sequence is restartable: ranging over it again replays the stack's
// current contents. The stack must not be structurally mutated while a
// traversal is in progress.
func (st *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < st.len; i++ {
			if !yield(st.data[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs, bottom to top.
func (st *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < st.len; i++ {
			if !yield(i, st.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs, top to bottom.
func (st *Stack[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := st.len - 1; i >= 0; i-- {
			if !yield(i, st.data[i]) {
				return
			}
		}
	}
}
