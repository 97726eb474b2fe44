// SPDX-License-Identifier: Apache-2.0

// Package bump implements a fixed-region bump allocator: allocations are
// served by monotonically advancing a cursor through a contiguous byte
// region, and freeing individual allocations is a no-op. Once the region
// is exhausted every further request fails with ErrOutOfMemory; the
// allocator never grows, compacts or reclaims space.
//
// The cursor is advanced with a compare-and-swap retry loop, so a single
// Allocator may be shared by concurrent goroutines and the ranges it
// returns are always pairwise disjoint.
package bump

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// DefaultSize is the region size used by New when the caller does not
// specify one (1 MiB).
const DefaultSize = 1 << 20

var (
	// ErrOutOfMemory is returned when the remaining region cannot satisfy
	// a request after alignment.
	ErrOutOfMemory = errors.New("bump: out of memory")

	// ErrInvalidAlignment is returned when the requested alignment is zero
	// or not a power of two.
	ErrInvalidAlignment = errors.New("bump: alignment must be a power of two")
)

// Allocator hands out non-overlapping byte ranges from a fixed contiguous
// region. It is safe for concurrent use.
type Allocator struct {
	buf  []byte // backing region, keeps the memory reachable
	base unsafe.Pointer
	size uintptr

	next   atomic.Uintptr // offset of the next free byte, 0 <= next <= size
	allocs atomic.Uint64
	failed atomic.Uint64
}

// New returns an Allocator owning a fresh region of the given size.
// If size is not positive, DefaultSize is used.
func New(size int) *Allocator {
	if size <= 0 {
		size = DefaultSize
	}
	return NewSlab(make([]byte, size))
}

// NewSlab returns an Allocator serving allocations from buf. The caller
// must ensure buf outlives the allocator and is not used for anything
// else while the allocator is live.
func NewSlab(buf []byte) *Allocator {
	a := &Allocator{
		buf:  buf,
		size: uintptr(len(buf)),
	}
	if len(buf) > 0 {
		a.base = unsafe.Pointer(unsafe.SliceData(buf))
	}
	return a
}

// alignUp rounds addr up to the next multiple of align.
// align must be a power of two.
func alignUp(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// Alloc reserves size bytes aligned to align and returns a pointer to the
// start of the range. The returned memory is zeroed and is valid until
// the allocator itself is released. On exhaustion it returns
// ErrOutOfMemory and leaves the cursor untouched, so repeating the same
// failing request fails the same way.
func (a *Allocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, ErrInvalidAlignment
	}
	for {
		cur := a.next.Load()
		addr := uintptr(a.base) + cur
		aligned := alignUp(addr, align)
		end := aligned + size
		// aligned < addr or end < aligned means the arithmetic wrapped
		// around the address space; treat it as exhaustion rather than
		// letting a small wrapped value pass the bounds check.
		if aligned < addr || end < aligned || end-uintptr(a.base) > a.size {
			a.failed.Add(1)
			return nil, ErrOutOfMemory
		}
		if a.next.CompareAndSwap(cur, end-uintptr(a.base)) {
			a.allocs.Add(1)
			p := unsafe.Add(a.base, aligned-uintptr(a.base))
			if size > 0 {
				// The backing slab may be caller-owned and dirty.
				clear(unsafe.Slice((*byte)(p), size))
			}
			return p, nil
		}
	}
}

// AllocBytes reserves n bytes with byte alignment and returns them as a
// slice pointing into the region.
func (a *Allocator) AllocBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	if n == 0 {
		return []byte{}, nil
	}
	p, err := a.Alloc(uintptr(n), 1)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(p), n), nil
}

// Free releases nothing: the allocator never reclaims space, so this is
// a deliberate no-op kept for allocator-interface symmetry. It is always
// safe to call, with any arguments, any number of times.
func (a *Allocator) Free(ptr unsafe.Pointer, size, align uintptr) {}
