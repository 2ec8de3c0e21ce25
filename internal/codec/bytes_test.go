package codec

import "testing"

func TestUint16(t *testing.T) {
	data := []byte{0x12, 0x34}
	if got := Uint16BE(data, 0); got != 0x1234 {
		t.Fatalf("Uint16BE: 0x%04X", got)
	}
	if got := Uint16LE(data, 0); got != 0x3412 {
		t.Fatalf("Uint16LE: 0x%04X", got)
	}
}

func TestUint32BE(t *testing.T) {
	data := []byte{0x98, 0x76, 0x54, 0x32}
	if got := Uint32BE(data, 0); got != 0x98765432 {
		t.Fatalf("Uint32BE: 0x%08X", got)
	}
	if got := Int32BE(data, 0); got >= 0 {
		t.Fatalf("Int32BE should be negative for a set sign bit: %d", got)
	}
}

func TestFixedPointToFloat(t *testing.T) {
	cases := []struct {
		data []byte
		want float32
	}{
		{[]byte{0x14, 0x80}, 20.5},
		{[]byte{0x80, 0x00}, -128.0},
		{[]byte{0x00, 0x40}, 0.25},
		{[]byte{0xEC, 0x00}, -20.0},
	}
	for _, tc := range cases {
		got := FixedPointToFloat(tc.data, 0)
		if diff := got - tc.want; diff < -0.01 || 0.01 < diff {
			t.Fatalf("FixedPointToFloat(% X) = %g, want %g", tc.data, got, tc.want)
		}
	}
}

func TestHexString(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0x01}
	if got := HexString(data, true); got != "DEAD01" {
		t.Fatalf("upper: %s", got)
	}
	if got := HexString(data, false); got != "dead01" {
		t.Fatalf("lower: %s", got)
	}
	if got := HexString(nil, true); got != "" {
		t.Fatalf("nil input: %q", got)
	}
}

func TestCopyRange(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	if got := CopyRange(src, 1, 3); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("CopyRange(1,3) = %v", got)
	}
	got := CopyRange(src, 0, 4)
	got[0] = 9
	if src[0] != 1 {
		t.Fatal("CopyRange must copy, not alias")
	}
	for _, bad := range [][2]int{{-1, 2}, {2, -1}, {3, 2}, {2, 5}} {
		if CopyRange(src, bad[0], bad[1]) != nil {
			t.Fatalf("CopyRange(%d,%d) should be nil", bad[0], bad[1])
		}
	}
	if CopyRange(nil, 0, 0) != nil {
		t.Fatal("CopyRange(nil) should be nil")
	}
	if got := CopyRange(src, 2, 2); got == nil || len(got) != 0 {
		t.Fatalf("empty range: %v", got)
	}
}
