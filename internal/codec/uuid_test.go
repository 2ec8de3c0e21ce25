package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom16(t *testing.T) {
	u, ok := From16([]byte{0xAB, 0xCD}, 0, true)
	require.True(t, ok)
	require.Equal(t, "0000cdab-0000-1000-8000-00805f9b34fb", u.String())

	u, ok = From16([]byte{0xCD, 0xAB}, 0, false)
	require.True(t, ok)
	require.Equal(t, "0000cdab-0000-1000-8000-00805f9b34fb", u.String())
}

func TestFrom16Bounds(t *testing.T) {
	_, ok := From16(nil, 0, true)
	require.False(t, ok)
	_, ok = From16([]byte{0xAB}, 0, true)
	require.False(t, ok)
	_, ok = From16([]byte{0xAB, 0xCD}, 1, true)
	require.False(t, ok)
	_, ok = From16([]byte{0xAB, 0xCD}, -1, true)
	require.False(t, ok)
}

func TestFrom32(t *testing.T) {
	u, ok := From32([]byte{0x89, 0xAB, 0xCD, 0xEF}, 0, true)
	require.True(t, ok)
	require.Equal(t, "efcdab89-0000-1000-8000-00805f9b34fb", u.String())

	u, ok = From32([]byte{0xEF, 0xCD, 0xAB, 0x89}, 0, false)
	require.True(t, ok)
	require.Equal(t, "efcdab89-0000-1000-8000-00805f9b34fb", u.String())
}

func TestFrom128(t *testing.T) {
	le := []byte{
		0x10, 0x32, 0x54, 0x76, 0x98, 0xBA, 0xDC, 0xFE,
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01,
	}
	u, ok := From128(le, 0, true)
	require.True(t, ok)
	require.Equal(t, "01234567-89ab-cdef-fedc-ba9876543210", u.String())

	be := []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF,
		0xFE, 0xDC, 0xBA, 0x98, 0x76, 0x54, 0x32, 0x10,
	}
	u, ok = From128(be, 0, false)
	require.True(t, ok)
	require.Equal(t, "01234567-89ab-cdef-fedc-ba9876543210", u.String())

	_, ok = From128(be, 1, false)
	require.False(t, ok)
}
