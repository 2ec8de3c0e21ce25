package gatt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestServiceByNumber(t *testing.T) {
	s, ok := ServiceByNumber(0x180F)
	require.True(t, ok)
	require.Equal(t, "Battery Service", s.Name())
	require.Equal(t, "battery_service", s.ShortType())
	require.Equal(t, "org.bluetooth.service.battery_service", s.SpecificationType())
	require.Equal(t, 0x180F, s.Number())

	_, ok = ServiceByNumber(0x0000)
	require.False(t, ok)
	_, ok = ServiceByNumber(0x2800)
	require.False(t, ok)
}

func TestServiceByUUIDString(t *testing.T) {
	cases := []struct {
		input  string
		number int
		found  bool
	}{
		{"0000180F-0000-1000-8000-00805F9B34FB", 0x180F, true},
		{"0000180f-0000-1000-8000-00805f9b34fb", 0x180F, true},
		{"0000180F00001000800000805F9B34FB", 0x180F, true},
		{"00001800-0000-1000-8000-00805f9B34fB", 0x1800, true},
		// A standard-base UUID whose number is not assigned.
		{"00001234-0000-1000-8000-00805F9B34FB", 0, false},
		// Not the Bluetooth base UUID.
		{"0000180F-0000-1000-8000-00805F9B34FC", 0, false},
		{"1000180F-0000-1000-8000-00805F9B34FB", 0, false},
		// Not a UUID at all.
		{"battery", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		s, ok := ServiceByUUIDString(c.input)
		require.Equal(t, c.found, ok, "input %q", c.input)
		if c.found {
			require.Equal(t, c.number, s.Number(), "input %q", c.input)
		}
	}
}

func TestServiceByUUID(t *testing.T) {
	s, ok := ServiceByUUID(uuid.MustParse("0000180D-0000-1000-8000-00805F9B34FB"))
	require.True(t, ok)
	require.Equal(t, "Heart Rate", s.Name())

	_, ok = ServiceByUUID(uuid.MustParse("f7826da6-4fa2-4e98-8024-bc5b71e0893e"))
	require.False(t, ok)
}

func TestServiceString(t *testing.T) {
	s, ok := ServiceByNumber(0x1800)
	require.True(t, ok)
	require.Equal(t, "Generic Access", s.String())
}
