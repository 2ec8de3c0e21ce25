package bleadv

import (
	"github.com/google/uuid"

	"github.com/TakahikoKawasaki/nv-bluetooth/internal/codec"
)

// StructureBuilder turns a wire triple into a typed AD structure. A builder
// returns nil to signal "not applicable", letting the parser try the next
// candidate for the type code and finally fall back to a generic Structure.
type StructureBuilder func(length, typ int, data []byte) ADStructure

// ManufacturerBuilder is a StructureBuilder for manufacturer specific data,
// additionally keyed by the 16-bit company ID read from the first two data
// bytes.
type ManufacturerBuilder func(length, typ int, data []byte, companyID int) ADStructure

func buildFlags(length, typ int, data []byte) ADStructure {
	return NewFlags(length, typ, data)
}

func buildLocalName(length, typ int, data []byte) ADStructure {
	return NewLocalName(length, typ, data)
}

func buildTxPowerLevel(length, typ int, data []byte) ADStructure {
	return NewTxPowerLevel(length, typ, data)
}

func buildServiceData(length, typ int, data []byte) ADStructure {
	return NewServiceData(length, typ, data)
}

func buildUUIDs(length, typ int, data []byte) ADStructure {
	var width int
	var from func([]byte, int, bool) (uuid.UUID, bool)
	switch typ {
	case 0x02, 0x03, 0x14: // 16-bit service class / solicitation lists
		width, from = 2, codec.From16
	case 0x04, 0x05, 0x1F: // 32-bit service class / solicitation lists
		width, from = 4, codec.From32
	case 0x06, 0x07, 0x15: // 128-bit service class / solicitation lists
		width, from = 16, codec.From128
	default:
		return nil
	}
	count := len(data) / width // any remainder is discarded
	uuids := make([]uuid.UUID, count)
	for i := 0; i < count; i++ {
		uuids[i], _ = from(data, i*width, true)
	}
	return NewUUIDs(length, typ, data, uuids)
}

// buildEddystone dispatches on the frame type nibble after checking the
// fixed Eddystone service UUID bytes. Unknown nibbles fall through to the
// generic service data builder.
func buildEddystone(length, typ int, data []byte) ADStructure {
	if len(data) < 3 {
		return nil
	}
	if data[0] != 0xAA || data[1] != 0xFE {
		return nil
	}
	switch data[2] & 0xF0 {
	case 0x00:
		return NewEddystoneUID(length, typ, data)
	case 0x10:
		return NewEddystoneURL(length, typ, data)
	case 0x20:
		return NewEddystoneTLM(length, typ, data)
	case 0x30:
		return NewEddystoneEID(length, typ, data)
	default:
		return nil
	}
}

// buildIBeacon recognizes Apple's proximity beacon subtype marker before
// attempting the strict fixed-layout construction.
func buildIBeacon(length, typ int, data []byte, companyID int) ADStructure {
	if len(data) < 4 {
		return nil
	}
	if data[2] != 0x02 || data[3] != 0x15 {
		return nil
	}
	b, err := NewIBeacon(length, typ, data, companyID)
	if err != nil {
		return nil
	}
	return b
}

func buildUcode(length, typ int, data []byte, companyID int) ADStructure {
	u, err := NewUcode(length, typ, data, companyID)
	if err != nil {
		return nil
	}
	return u
}
