// SPDX-License-Identifier: Apache-2.0

package bump

import (
	"unsafe"
)

const growThreshold = 256

// NewIn allocates a zeroed value of type T in the arena and returns a
// pointer to it. The pointer is valid until the allocator is released.
func NewIn[T any](a *Allocator) (*T, error) {
	var x T
	ptr, err := a.Alloc(unsafe.Sizeof(x), unsafe.Alignof(x))
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// MakeSlice allocates a slice of type T with the given length and
// capacity from the arena. Elements are zeroed.
func MakeSlice[T any](a *Allocator, length, capacity int) ([]T, error) {
	if capacity < length {
		capacity = length
	}
	if capacity == 0 {
		return []T{}, nil
	}
	var x T
	ptr, err := a.Alloc(unsafe.Sizeof(x)*uintptr(capacity), unsafe.Alignof(x))
	if err != nil {
		return nil, err
	}
	s := unsafe.Slice((*T)(ptr), capacity)
	return s[:length], nil
}

// Append appends data to s, moving s to a larger arena allocation when it
// is out of capacity. Unlike the built-in append there is no heap
// fallback: when the region cannot hold the grown slice, Append returns
// ErrOutOfMemory and s is left unchanged.
func Append[T any](a *Allocator, s []T, data ...T) ([]T, error) {
	if len(data) == 0 {
		return s, nil
	}
	s2, err := growSlice(a, s, len(data))
	if err != nil {
		return s, err
	}
	return append(s2, data...), nil
}

func growSlice[T any](a *Allocator, s []T, dataLen int) ([]T, error) {
	newLen := len(s) + dataLen
	newCap := cap(s)

	if newCap > 0 {
		for newLen > newCap {
			if newCap < growThreshold {
				newCap *= 2
			} else {
				newCap += newCap / 4
			}
		}
	} else {
		newCap = dataLen
	}
	if newCap == cap(s) {
		return s, nil
	}
	s2, err := MakeSlice[T](a, len(s), newCap)
	if err != nil {
		return nil, err
	}
	copy(s2, s)
	return s2, nil
}
