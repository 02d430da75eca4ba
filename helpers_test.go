package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// item is an element whose lifecycle is recorded in a ledger.
type item struct {
	Val   int
	Moved bool
}

// ledger counts live items and fails the n-th hook call when armed.
type ledger struct {
	live   int
	calls  int
	failAt int
}

// failAfter lets the next n hook calls succeed and fails the one after.
func (l *ledger) failAfter(n int) {
	l.calls = 0
	l.failAt = n + 1
}

func (l *ledger) disarm() {
	l.failAt = 0
}

func (l *ledger) tick() error {
	l.calls++
	if l.failAt > 0 && l.calls == l.failAt {
		return errInjected
	}
	return nil
}

type moveMode int

const (
	moveBitwise     moveMode = iota // no Move hook
	moveMayFail                     // Move hook that can fail, copyable: copies on growth
	moveNoFail                      // Move hook declared infallible
	moveOnlyMayFail                 // Move hook that can fail, not copyable
)

func (l *ledger) traits(mode moveMode) Traits[item] {
	t := Traits[item]{
		Construct: func(dst *item) error {
			if err := l.tick(); err != nil {
				return err
			}
			*dst = item{}
			l.live++
			return nil
		},
		Copy: func(dst, src *item) error {
			if err := l.tick(); err != nil {
				return err
			}
			*dst = item{Val: src.Val}
			l.live++
			return nil
		},
		Destroy: func(p *item) {
			l.live--
			*p = item{}
		},
	}
	if mode == moveBitwise {
		return t
	}
	t.Move = func(dst, src *item) error {
		if mode != moveNoFail {
			if err := l.tick(); err != nil {
				return err
			}
		}
		*dst = item{Val: src.Val}
		src.Moved = true
		l.live++
		return nil
	}
	t.MoveCannotFail = mode == moveNoFail
	t.NoCopy = mode == moveOnlyMayFail
	return t
}

// make returns a Ctor that builds an item holding val.
func (l *ledger) make(val int) Ctor[item] {
	return func(dst *item) error {
		if err := l.tick(); err != nil {
			return err
		}
		*dst = item{Val: val}
		l.live++
		return nil
	}
}

// newTracked returns a vector of items valued 1..n with capacity exactly n,
// backed by its own heap allocator.
func newTracked(t *testing.T, l *ledger, mode moveMode, n int) (*Vector[item], *HeapAllocator) {
	t.Helper()
	h := NewHeapAllocator(0)
	v := New(WithAllocator[item](h), WithTraits(l.traits(mode)))
	require.NoError(t, v.Reserve(n))
	for i := 1; i <= n; i++ {
		_, err := v.EmplaceBack(l.make(i))
		require.NoError(t, err)
	}
	v.ResetMetrics()
	return v, h
}

func vals(v *Vector[item]) []int {
	out := make([]int, 0, v.Len())
	for _, it := range v.All() {
		out = append(out, it.Val)
	}
	return out
}

func ints(v *Vector[int]) []int {
	return append([]int(nil), v.Slice()...)
}
