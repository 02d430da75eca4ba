package vector

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthDoubles(t *testing.T) {
	v := New[int]()
	var caps []int
	for i := range 9 {
		require.NoError(t, v.PushBack(i))
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
}

func TestAmortizedAppend(t *testing.T) {
	for _, n := range []int{1, 10, 1000, 4096, 5000} {
		v := New[int]()
		for i := range n {
			require.NoError(t, v.PushBack(i))
			require.LessOrEqual(t, v.Len(), v.Cap())
		}
		m := v.Metrics()

		wantReallocs := bits.Len(uint(n-1)) + 1
		assert.Equal(t, wantReallocs, m.Reallocations, "n=%d", n)
		assert.Less(t, m.Moved, 2*n, "n=%d", n)
		assert.Zero(t, m.Copied)
		assert.Zero(t, m.Shifted)
	}
}

func TestReserve(t *testing.T) {
	h := NewHeapAllocator(0)
	v := New(WithAllocator[int](h))
	for i := range 3 {
		require.NoError(t, v.PushBack(i))
	}

	require.NoError(t, v.Reserve(2))
	assert.Equal(t, 4, v.Cap(), "Reserve never shrinks")

	allocs := h.Allocations()
	require.NoError(t, v.Reserve(4))
	assert.Equal(t, allocs, h.Allocations(), "Reserve within capacity does not allocate")

	require.NoError(t, v.Reserve(100))
	assert.Equal(t, 100, v.Cap(), "Reserve allocates exactly the request")
	assert.Equal(t, []int{0, 1, 2}, ints(v))
}

func TestReserveOutOfMemoryLeavesVector(t *testing.T) {
	h := NewHeapAllocator(64)
	v := New(WithAllocator[int64](h))
	for i := range 4 {
		require.NoError(t, v.PushBack(int64(i)))
	}

	err := v.Reserve(100)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())
}

// Growth must never leave size and capacity inconsistent, whichever
// relocation policy applies.
func TestReserveFailure(t *testing.T) {
	tests := []struct {
		name string
		mode moveMode
		// strong reports whether the old values must survive intact.
		strong bool
	}{
		{"copy fallback", moveMayFail, true},
		{"move only", moveOnlyMayFail, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}
			v, h := newTracked(t, l, tt.mode, 4)
			inUse := h.InUse()

			l.failAfter(2)
			require.ErrorIs(t, v.Reserve(10), errInjected)

			assert.Equal(t, 4, v.Len())
			assert.Equal(t, 4, v.Cap())
			assert.Equal(t, 4, l.live, "no element leaked or destroyed twice")
			assert.Equal(t, inUse, h.InUse(), "the new block was released")
			if tt.strong {
				assert.Equal(t, []int{1, 2, 3, 4}, vals(v))
				for _, it := range v.All() {
					assert.False(t, it.Moved)
				}
			}
		})
	}
}

func TestReservePolicy(t *testing.T) {
	tests := []struct {
		name       string
		mode       moveMode
		wantMoved  int
		wantCopied int
	}{
		{"bitwise", moveBitwise, 3, 0},
		{"move may fail", moveMayFail, 0, 3},
		{"move cannot fail", moveNoFail, 3, 0},
		{"move only", moveOnlyMayFail, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}
			v, _ := newTracked(t, l, tt.mode, 3)

			require.NoError(t, v.Reserve(8))
			m := v.Metrics()
			assert.Equal(t, tt.wantMoved, m.Moved)
			assert.Equal(t, tt.wantCopied, m.Copied)
			assert.Equal(t, 1, m.Reallocations)
			assert.Equal(t, []int{1, 2, 3}, vals(v))
			assert.Equal(t, 3, l.live)
		})
	}
}

func TestEmplaceBackBuildsBeforeTransfer(t *testing.T) {
	l := &ledger{}
	v, h := newTracked(t, l, moveMayFail, 2)
	inUse := h.InUse()

	// The first hook call is the new element; failing it must leave the old
	// block untouched.
	l.failAfter(0)
	_, err := v.EmplaceBack(l.make(3))
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []int{1, 2}, vals(v))
	assert.Equal(t, 2, v.Cap())
	assert.Equal(t, 2, l.live)
	assert.Equal(t, inUse, h.InUse())

	// Failing the transfer after the new element is built destroys it too.
	l.failAfter(2)
	_, err = v.EmplaceBack(l.make(3))
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []int{1, 2}, vals(v))
	assert.Equal(t, 2, l.live)
	assert.Equal(t, inUse, h.InUse())

	l.disarm()
	p, err := v.EmplaceBack(l.make(3))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Val)
	assert.Same(t, p, v.Back())
	assert.Equal(t, []int{1, 2, 3}, vals(v))
	assert.Equal(t, 3, l.live)
}

func TestEmplaceBackFromOwnElement(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.PushBack(7))
	for range 5 {
		// Full or not, the source element is read before it can move.
		_, err := v.EmplaceBack(v.CopyOf(v.Front()))
		require.NoError(t, err)
	}
	assert.Equal(t, []int{7, 7, 7, 7, 7, 7}, ints(v))
}

func TestResize(t *testing.T) {
	v := New[int]()
	for _, x := range []int{9, 2, 3} {
		require.NoError(t, v.PushBack(x))
	}

	require.NoError(t, v.Resize(5))
	assert.Equal(t, []int{9, 2, 3, 0, 0}, ints(v))
	assert.Equal(t, 8, v.Cap(), "growth doubles when that exceeds the request")

	require.NoError(t, v.Resize(20))
	assert.Equal(t, 20, v.Len())
	assert.Equal(t, 20, v.Cap(), "growth takes the request when it exceeds double")

	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{9, 2}, ints(v))
	assert.Equal(t, 20, v.Cap(), "shrinking keeps capacity")

	require.NoError(t, v.Resize(0))
	assert.True(t, v.Empty())

	assert.Panics(t, func() { _ = v.Resize(-1) })
}

func TestResizeDestroysTail(t *testing.T) {
	l := &ledger{}
	v, _ := newTracked(t, l, moveBitwise, 5)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, 2, l.live)
	assert.Equal(t, []int{1, 2}, vals(v))
}

func TestResizeConstructFailure(t *testing.T) {
	l := &ledger{}
	v, _ := newTracked(t, l, moveBitwise, 2)
	require.NoError(t, v.Reserve(10))

	l.failAfter(3)
	require.ErrorIs(t, v.Resize(8), errInjected)
	assert.Equal(t, 2, v.Len(), "size is only updated on success")
	assert.Equal(t, 2, l.live)
	assert.Equal(t, []int{1, 2}, vals(v))
}

func TestShrinkToFit(t *testing.T) {
	h := NewHeapAllocator(0)
	v := New(WithAllocator[int](h))
	for i := range 5 {
		require.NoError(t, v.PushBack(i))
	}
	require.Equal(t, 8, v.Cap())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 5, v.Cap())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ints(v))

	allocs := h.Allocations()
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, allocs, h.Allocations())

	v.Clear()
	require.NoError(t, v.ShrinkToFit())
	assert.Zero(t, v.Cap())
	assert.Zero(t, h.InUse())
}

func TestClearKeepsCapacity(t *testing.T) {
	l := &ledger{}
	v, _ := newTracked(t, l, moveBitwise, 4)

	v.Clear()
	assert.Zero(t, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.Zero(t, l.live)
}
