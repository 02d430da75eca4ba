//go:build linux || darwin || freebsd || netbsd || openbsd

package mmap

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/pavanmanishd/vector"
)

func TestAllocateRoundsToPages(t *testing.T) {
	m := New()
	defer m.Close()
	page := unix.Getpagesize()

	p, err := m.Allocate(10, 8)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Zero(t, uintptr(p)%uintptr(page), "mapping should be page aligned")

	b := unsafe.Slice((*byte)(p), 10)
	for i := range b {
		b[i] = byte(i)
	}
	assert.Equal(t, byte(9), b[9])

	st := m.Stats()
	assert.Equal(t, 1, st.Regions)
	assert.Equal(t, page, st.Mapped)

	m.Deallocate(p, 10)
	st = m.Stats()
	assert.Zero(t, st.Regions)
	assert.Zero(t, st.Mapped)
	assert.Equal(t, 1, st.Unmaps)
}

func TestAllocateZeroAndBadAlign(t *testing.T) {
	m := New()
	defer m.Close()

	p, err := m.Allocate(0, 8)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Zero(t, m.Stats().Maps, "zero size must not map")

	_, err = m.Allocate(64, uintptr(unix.Getpagesize())*2)
	assert.True(t, errors.Is(err, ErrAlign))
}

func TestDeallocateUnknownPointer(t *testing.T) {
	m := New()
	defer m.Close()

	var x int64
	m.Deallocate(unsafe.Pointer(&x), 8)
	m.Deallocate(nil, 8)
	assert.Zero(t, m.Stats().Unmaps)
}

func TestCloseUnmapsOutstanding(t *testing.T) {
	m := New()
	for range 3 {
		_, err := m.Allocate(100, 8)
		require.NoError(t, err)
	}
	require.NoError(t, m.Close())
	st := m.Stats()
	assert.Zero(t, st.Regions)
	assert.Equal(t, 3, st.Unmaps)
}

type point struct {
	X, Y int32
}

func TestVectorOnMappedStorage(t *testing.T) {
	m := New()
	defer m.Close()

	v := vector.New(vector.WithAllocator[point](m))
	for i := range 100 {
		require.NoError(t, v.PushBack(point{int32(i), int32(-i)}))
	}
	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 128, v.Cap())
	assert.Equal(t, point{42, -42}, *v.Index(42))
	assert.Equal(t, 1, m.Stats().Regions, "old blocks should be unmapped after each reallocation")

	v.Release()
	assert.Zero(t, m.Stats().Regions)
}

func TestVectorRejectsPointerElems(t *testing.T) {
	m := New()
	defer m.Close()

	v := vector.New(vector.WithAllocator[*int](m))
	err := v.PushBack(new(int))
	assert.ErrorIs(t, err, vector.ErrPointerElems)
	assert.Zero(t, v.Len())
	assert.Zero(t, m.Stats().Maps)
}
