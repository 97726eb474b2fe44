// SPDX-License-Identifier: Apache-2.0

package bump

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewPutAndGet(t *testing.T) {
	a := New(256)

	v, err := AllocView(a, 16)
	require.NoError(t, err)
	require.Equal(t, 16, v.Len())

	// Two 32-bit values side by side, the way a raw binary payload
	// would be laid out at an allocated offset.
	require.NoError(t, v.PutUint32(0, 0xDEADBEEF))
	require.NoError(t, v.PutUint32(4, 0xC0FFEE))

	x, err := v.Uint32(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), x)

	y, err := v.Uint32(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xC0FFEE), y)

	require.NoError(t, v.PutUint64(8, 1<<40))
	z, err := v.Uint64(8)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<40), z)
}

func TestViewBounds(t *testing.T) {
	a := New(64)

	v, err := AllocView(a, 8)
	require.NoError(t, err)

	require.ErrorIs(t, v.PutUint32(5, 1), ErrOutOfRange)
	require.ErrorIs(t, v.PutUint64(1, 1), ErrOutOfRange)
	require.ErrorIs(t, v.PutUint8(8, 1), ErrOutOfRange)
	require.ErrorIs(t, v.PutUint16(-1, 1), ErrOutOfRange)
	require.ErrorIs(t, v.PutBytes(6, []byte("abc")), ErrOutOfRange)

	_, err = v.Uint32(5)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = v.Uint64(8)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = v.Uint8(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	// In-bounds accesses at the very edge still work.
	require.NoError(t, v.PutUint64(0, 42))
	require.NoError(t, v.PutUint8(7, 9))
}

func TestViewByteOrder(t *testing.T) {
	a := New(64)

	le, err := AllocView(a, 4)
	require.NoError(t, err)
	require.NoError(t, le.PutUint32(0, 0x01020304))
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le.Bytes())

	be := le.WithOrder(binary.BigEndian)
	x, err := be.Uint32(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), x)

	require.NoError(t, be.PutUint16(0, 0x0102))
	require.Equal(t, []byte{0x01, 0x02}, be.Bytes()[:2])
}

func TestViewOf(t *testing.T) {
	a := New(64)

	b, err := a.AllocBytes(4)
	require.NoError(t, err)

	v := ViewOf(b)
	require.NoError(t, v.PutUint16(2, 0xBEEF))

	// The view writes through to the allocated bytes.
	require.Equal(t, uint16(0xBEEF), binary.LittleEndian.Uint16(b[2:]))
}

func TestAllocViewExhausted(t *testing.T) {
	a := New(8)

	_, err := AllocView(a, 64)
	require.ErrorIs(t, err, ErrOutOfMemory)
}
