// Package codec holds the stateless byte-level helpers shared by the AD
// structure decoders: multi-byte integer parsing, the 8.8 fixed point
// format used by Eddystone telemetry, hex rendering and bounds-checked
// range copies.
package codec

const hexUpper = "0123456789ABCDEF"
const hexLower = "0123456789abcdef"

// Uint16BE parses 2 bytes in big endian byte order.
// The offset must be valid; out-of-range offsets panic.
func Uint16BE(data []byte, offset int) int {
	return int(data[offset])<<8 | int(data[offset+1])
}

// Uint16LE parses 2 bytes in little endian byte order.
func Uint16LE(data []byte, offset int) int {
	return int(data[offset+1])<<8 | int(data[offset])
}

// Int32BE parses 4 bytes in big endian byte order as a signed integer.
func Int32BE(data []byte, offset int) int32 {
	return int32(data[offset])<<24 | int32(data[offset+1])<<16 |
		int32(data[offset+2])<<8 | int32(data[offset+3])
}

// Uint32BE parses 4 bytes in big endian byte order as an unsigned integer.
func Uint32BE(data []byte, offset int) uint32 {
	return uint32(data[offset])<<24 | uint32(data[offset+1])<<16 |
		uint32(data[offset+2])<<8 | uint32(data[offset+3])
}

// FixedPointToFloat converts 2 bytes in 8.8 fixed point format: a signed
// integer part followed by an unsigned fractional part in 1/256 units.
func FixedPointToFloat(data []byte, offset int) float32 {
	return float32(int8(data[offset])) + float32(data[offset+1])/256.0
}

// HexString renders two hex characters per byte. The empty string is
// returned for nil input.
func HexString(data []byte, upper bool) string {
	if data == nil {
		return ""
	}
	table := hexLower
	if upper {
		table = hexUpper
	}
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = table[b>>4]
		out[i*2+1] = table[b&0x0F]
	}
	return string(out)
}

// CopyRange copies source[from:to] into a fresh slice. It returns nil when
// source is nil, either index is negative, the length is negative, or the
// range runs past the end of source.
func CopyRange(source []byte, from, to int) []byte {
	if source == nil || from < 0 || to < 0 {
		return nil
	}
	length := to - from
	if length < 0 || len(source) < from+length {
		return nil
	}
	dst := make([]byte, length)
	copy(dst, source[from:to])
	return dst
}
