// Package stack provides a non-thread-safe, fixed-capacity LIFO stack.
//
// The capacity is fixed at construction: the backing storage is allocated
// exactly once and never resized, so no operation allocates after New.
// Push on a full stack is a recoverable condition reported through ErrFull,
// never a silent drop. Out-of-bounds access and over-capacity construction
// are programmer errors and panic.
package stack

import (
	"errors"
	"fmt"
)

// ErrFull happens when pushing onto a stack whose length has reached its
// capacity. The stack is left unchanged and the caller keeps the value.
var ErrFull = errors.New("stack is full")

// Stack is a non-thread-safe stack holding at most Cap elements.
//
// Slots at indices [Len, Cap) always hold the zero value of T so that
// popped or cleared elements do not keep referenced memory alive.
type Stack[T any] struct {
	len  int
	data []T
}

// New creates an empty stack with the given fixed capacity.
// A zero capacity is legal and yields a stack that can hold nothing.
// New panics if capacity is negative.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("stack: attempted to create a stack with capacity %d", capacity))
	}
	return &Stack[T]{data: make([]T, capacity)}
}

// Of creates a stack with the given capacity, pre-filled with vals in order.
// The first value is the bottom of the stack and the last is the top.
// Of panics if more values are supplied than the capacity allows, as this
// indicates a static capacity mismatch at the call site.
func Of[T any](capacity int, vals ...T) *Stack[T] {
	if len(vals) > capacity {
		panic(fmt.Sprintf("stack: attempted to create a stack of len %d, but the capacity was %d",
			len(vals), capacity))
	}
	st := New[T](capacity)
	st.len = copy(st.data, vals)
	return st
}

// Repeat creates a stack with the given capacity holding n copies of v.
// Repeat panics if n exceeds the capacity or is negative.
func Repeat[T any](v T, n, capacity int) *Stack[T] {
	if n < 0 || n > capacity {
		panic(fmt.Sprintf("stack: attempted to create a stack of len %d, but the capacity was %d",
			n, capacity))
	}
	st := New[T](capacity)
	for i := 0; i < n; i++ {
		st.data[i] = v
	}
	st.len = n
	return st
}

// FromSlice creates a stack holding a copy of vals, with capacity equal to
// their count. The resulting stack starts out full.
func FromSlice[T any](vals []T) *Stack[T] {
	return Of(len(vals), vals...)
}

// Len returns the number of elements currently in the stack.
func (st *Stack[T]) Len() int {
	return st.len
}

// Cap returns the fixed capacity the stack was created with.
func (st *Stack[T]) Cap() int {
	return len(st.data)
}

// IsEmpty reports whether the stack contains no elements.
func (st *Stack[T]) IsEmpty() bool {
	return st.len == 0
}

// IsFull reports whether the stack contains as many elements as its capacity.
func (st *Stack[T]) IsFull() bool {
	return st.len == len(st.data)
}

// Push places v on top of the stack.
// If the stack is full it returns ErrFull and leaves the stack unchanged;
// the caller retains v and may discard it or push it elsewhere.
func (st *Stack[T]) Push(v T) error {
	if st.IsFull() {
		return ErrFull
	}
	st.data[st.len] = v
	st.len++
	return nil
}

// Pop removes and returns the top element.
// It reports false if the stack is empty.
func (st *Stack[T]) Pop() (T, bool) {
	var zero T
	if st.len == 0 {
		return zero, false
	}
	st.len--
	v := st.data[st.len]
	st.data[st.len] = zero
	return v, true
}

// Peek returns the top element without removing it.
// It reports false if the stack is empty.
func (st *Stack[T]) Peek() (T, bool) {
	if st.len == 0 {
		var zero T
		return zero, false
	}
	return st.data[st.len-1], true
}

// PeekMut returns a pointer to the top element for in-place modification,
// or nil if the stack is empty. The pointer must not be used across a
// subsequent Push, Pop, Clear or Truncate.
func (st *Stack[T]) PeekMut() *T {
	if st.len == 0 {
		return nil
	}
	return &st.data[st.len-1]
}

// At returns the element at index i, counting from the bottom of the stack.
// At panics if i is out of bounds.
func (st *Stack[T]) At(i int) T {
	st.checkBounds(i, "read")
	return st.data[i]
}

// Set replaces the element at index i, counting from the bottom of the stack.
// Set panics if i is out of bounds.
func (st *Stack[T]) Set(i int, v T) {
	st.checkBounds(i, "write")
	st.data[i] = v
}

// Slice returns the occupied prefix of the stack as a slice, bottom first.
// The slice aliases the stack's storage: writing through it updates elements
// in place, and it is invalidated by any structural mutation of the stack.
func (st *Stack[T]) Slice() []T {
	return st.data[:st.len]
}

// Clear removes all elements from the stack.
func (st *Stack[T]) Clear() {
	var zero T
	for i := 0; i < st.len; i++ {
		st.data[i] = zero
	}
	st.len = 0
}

// Truncate removes all elements after the first n.
// The stack is unchanged if n is not less than its length.
func (st *Stack[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for i := n; i < st.len; i++ {
		st.data[i] = zero
	}
	if n < st.len {
		st.len = n
	}
}

// Resize grows or truncates the stack in place to length n, filling any new
// slots with v. Resize panics if n exceeds the capacity.
func (st *Stack[T]) Resize(n int, v T) {
	st.ResizeFunc(n, func() T { return v })
}

// ResizeFunc grows or truncates the stack in place to length n, calling f
// once per new slot. ResizeFunc panics if n exceeds the capacity.
func (st *Stack[T]) ResizeFunc(n int, f func() T) {
	st.checkCapacity(n, "resize")
	if n < st.len {
		st.Truncate(n)
		return
	}
	for st.len < n {
		st.data[st.len] = f()
		st.len++
	}
}

// Extend pushes vals in order until the stack is full, and returns the
// suffix of vals that did not fit. It returns nil when every value fit.
func (st *Stack[T]) Extend(vals []T) []T {
	n := copy(st.data[st.len:], vals)
	st.len += n
	if n == len(vals) {
		return nil
	}
	return vals[n:]
}

// Insert places v at index i, shifting the elements at [i, Len) up by one.
// If the stack is full the displaced last element is evicted and returned
// with true; otherwise the length grows by one and Insert reports false.
// Insert panics if i is not an occupied index.
func (st *Stack[T]) Insert(i int, v T) (T, bool) {
	st.checkBounds(i, "insert")
	if st.IsFull() {
		evicted := st.data[st.len-1]
		copy(st.data[i+1:st.len], st.data[i:st.len-1])
		st.data[i] = v
		return evicted, true
	}
	copy(st.data[i+1:st.len+1], st.data[i:st.len])
	st.data[i] = v
	st.len++
	var zero T
	return zero, false
}

// Remove removes and returns the element at index i, shifting the elements
// above it down by one. Remove panics if i is out of bounds.
func (st *Stack[T]) Remove(i int) T {
	st.checkBounds(i, "remove")
	v := st.data[i]
	copy(st.data[i:st.len-1], st.data[i+1:st.len])
	st.len--
	var zero T
	st.data[st.len] = zero
	return v
}

// SwapRemove removes and returns the element at index i by replacing it with
// the top element. It is O(1) but does not preserve element order.
// SwapRemove panics if i is out of bounds.
func (st *Stack[T]) SwapRemove(i int) T {
	st.checkBounds(i, "remove")
	v := st.data[i]
	st.len--
	st.data[i] = st.data[st.len]
	var zero T
	st.data[st.len] = zero
	return v
}

// Clone returns a copy of the stack with the same capacity and contents.
func (st *Stack[T]) Clone() *Stack[T] {
	dup := New[T](len(st.data))
	dup.len = copy(dup.data, st.data[:st.len])
	return dup
}

// String renders the occupied elements bottom to top.
func (st *Stack[T]) String() string {
	return fmt.Sprintf("%v", st.data[:st.len])
}

func (st *Stack[T]) checkBounds(i int, op string) {
	if i < 0 || i >= st.len {
		panic(fmt.Sprintf("stack: attempted to %s item at %d, but the len was %d", op, i, st.len))
	}
}

func (st *Stack[T]) checkCapacity(n int, op string) {
	if n < 0 || n > len(st.data) {
		panic(fmt.Sprintf("stack: attempted to %s to %d, but the capacity was %d", op, n, len(st.data)))
	}
}
