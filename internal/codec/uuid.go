package codec

import "github.com/google/uuid"

// baseUUID is the Bluetooth Base UUID, 00000000-0000-1000-8000-00805F9B34FB.
// 16-bit and 32-bit UUIDs occupy its leading 4 bytes.
var baseUUID = [16]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0x80, 0x5F, 0x9B, 0x34, 0xFB,
}

// From16 builds a full UUID from 16-bit UUID data embedded in the Bluetooth
// Base UUID. It reports false when data is nil, the offset is negative, or
// fewer than 2 bytes are available at the offset.
func From16(data []byte, offset int, littleEndian bool) (uuid.UUID, bool) {
	if data == nil || offset < 0 || len(data) < offset+2 {
		return uuid.Nil, false
	}
	var u uuid.UUID = baseUUID
	if littleEndian {
		u[2], u[3] = data[offset+1], data[offset]
	} else {
		u[2], u[3] = data[offset], data[offset+1]
	}
	return u, true
}

// From32 builds a full UUID from 32-bit UUID data embedded in the Bluetooth
// Base UUID, with the same bounds behavior as From16.
func From32(data []byte, offset int, littleEndian bool) (uuid.UUID, bool) {
	if data == nil || offset < 0 || len(data) < offset+4 {
		return uuid.Nil, false
	}
	var u uuid.UUID = baseUUID
	if littleEndian {
		u[0], u[1], u[2], u[3] = data[offset+3], data[offset+2], data[offset+1], data[offset]
	} else {
		copy(u[0:4], data[offset:offset+4])
	}
	return u, true
}

// From128 interprets 16 raw bytes directly as a UUID, reversing them first
// when they are stored in little endian.
func From128(data []byte, offset int, littleEndian bool) (uuid.UUID, bool) {
	if data == nil || offset < 0 || len(data) < offset+16 {
		return uuid.Nil, false
	}
	var u uuid.UUID
	if littleEndian {
		for i := 0; i < 16; i++ {
			u[i] = data[offset+15-i]
		}
	} else {
		copy(u[:], data[offset:offset+16])
	}
	return u, true
}
