package gatt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCodeByValue(t *testing.T) {
	c, ok := StatusCodeByValue(0x00)
	require.True(t, ok)
	require.Equal(t, StatusSuccess, c)

	c, ok = StatusCodeByValue(0x8F)
	require.True(t, ok)
	require.Equal(t, StatusCongested, c)

	c, ok = StatusCodeByValue(0xFF)
	require.True(t, ok)
	require.Equal(t, StatusOutOfRange, c)

	// A gap in the assigned values.
	_, ok = StatusCodeByValue(0x20)
	require.False(t, ok)
	_, ok = StatusCodeByValue(-1)
	require.False(t, ok)
	_, ok = StatusCodeByValue(0x100)
	require.False(t, ok)
}

func TestStatusCodeString(t *testing.T) {
	require.Equal(t, "SUCCESS", StatusSuccess.String())
	require.Equal(t, "AUTH_FAIL", StatusAuthFail.String())
	require.Equal(t, "UNKNOWN", StatusCode(0x42).String())
}
