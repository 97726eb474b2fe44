// SPDX-License-Identifier: Apache-2.0

package bump

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfRange is returned by View accessors when a read or write does
// not lie fully inside the view.
var ErrOutOfRange = errors.New("bump: view access out of range")

// View is a bounds-checked window over an arena allocation with explicit
// fixed-width integer access. It replaces raw pointer reinterpretation:
// binary payloads are written and read through an explicit byte order
// instead of casting addresses to typed pointers.
type View struct {
	b     []byte
	order binary.ByteOrder
}

// AllocView reserves n zeroed bytes from the arena and returns a
// little-endian View over them.
func AllocView(a *Allocator, n int) (View, error) {
	b, err := a.AllocBytes(n)
	if err != nil {
		return View{}, err
	}
	return View{b: b, order: binary.LittleEndian}, nil
}

// ViewOf wraps an existing byte slice, typically one returned by
// AllocBytes or MakeSlice.
func ViewOf(b []byte) View {
	return View{b: b, order: binary.LittleEndian}
}

// WithOrder returns a view over the same bytes using the given byte
// order.
func (v View) WithOrder(order binary.ByteOrder) View {
	return View{b: v.b, order: order}
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.b)
}

// Bytes returns the view's backing bytes. The slice aliases arena
// memory; it remains valid until the allocator is released.
func (v View) Bytes() []byte {
	return v.b
}

func (v View) check(off, width int) error {
	if off < 0 || width > len(v.b)-off {
		return ErrOutOfRange
	}
	return nil
}

// PutBytes copies p into the view at off.
func (v View) PutBytes(off int, p []byte) error {
	if err := v.check(off, len(p)); err != nil {
		return err
	}
	copy(v.b[off:], p)
	return nil
}

// PutUint8 writes an unsigned 8-bit integer at off.
func (v View) PutUint8(off int, x uint8) error {
	if err := v.check(off, 1); err != nil {
		return err
	}
	v.b[off] = x
	return nil
}

// PutUint16 writes an unsigned 16-bit integer at off.
func (v View) PutUint16(off int, x uint16) error {
	if err := v.check(off, 2); err != nil {
		return err
	}
	v.order.PutUint16(v.b[off:], x)
	return nil
}

// PutUint32 writes an unsigned 32-bit integer at off.
func (v View) PutUint32(off int, x uint32) error {
	if err := v.check(off, 4); err != nil {
		return err
	}
	v.order.PutUint32(v.b[off:], x)
	return nil
}

// PutUint64 writes an unsigned 64-bit integer at off.
func (v View) PutUint64(off int, x uint64) error {
	if err := v.check(off, 8); err != nil {
		return err
	}
	v.order.PutUint64(v.b[off:], x)
	return nil
}

// Uint8 reads an unsigned 8-bit integer at off.
func (v View) Uint8(off int) (uint8, error) {
	if err := v.check(off, 1); err != nil {
		return 0, err
	}
	return v.b[off], nil
}

// Uint16 reads an unsigned 16-bit integer at off.
func (v View) Uint16(off int) (uint16, error) {
	if err := v.check(off, 2); err != nil {
		return 0, err
	}
	return v.order.Uint16(v.b[off:]), nil
}

// Uint32 reads an unsigned 32-bit integer at off.
func (v View) Uint32(off int) (uint32, error) {
	if err := v.check(off, 4); err != nil {
		return 0, err
	}
	return v.order.Uint32(v.b[off:]), nil
}

// Uint64 reads an unsigned 64-bit integer at off.
func (v View) Uint64(off int) (uint64, error) {
	if err := v.check(off, 8); err != nil {
		return 0, err
	}
	return v.order.Uint64(v.b[off:]), nil
}
