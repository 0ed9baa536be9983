package stack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixedcap/stack"
)

func TestValues(t *testing.T) {
	st := stack.New[int](5)
	for _, v := range []int{6, 2, 8} {
		require.NoError(t, st.Push(v))
	}

	var got []int
	for v := range st.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{6, 2, 8}, got)

	// the sequence is restartable.
	got = got[:0]
	for v := range st.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{6, 2, 8}, got)
}

func TestValuesEmpty(t *testing.T) {
	for range stack.New[int](3).Values() {
		t.Fatal("yielded a value from an empty stack")
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	st := stack.Of(5, 6, 2, 8, 3, 1)
	var got []int
	for v := range st.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []int{6, 2}, got)
}

func TestAll(t *testing.T) {
	st := stack.Of(5, 6, 2, 8)
	var idx, got []int
	for i, v := range st.All() {
		idx = append(idx, i)
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []int{6, 2, 8}, got)
}

func TestBackward(t *testing.T) {
	st := stack.Of(5, 6, 2, 8)
	var idx, got []int
	for i, v := range st.Backward() {
		idx = append(idx, i)
		got = append(got, v)
	}
	require.Equal(t, []int{2, 1, 0}, idx)
	require.Equal(t, []int{8, 2, 6}, got)
}

func TestMutableTraversal(t *testing.T) {
	st := stack.Of(5, 1, 2, 3)
	s := st.Slice()
	for i := range s {
		s[i] *= 10
	}
	require.True(t, stack.EqualSlice(st, []int{10, 20, 30}))
}
