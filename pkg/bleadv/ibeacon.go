package bleadv

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/TakahikoKawasaki/nv-bluetooth/internal/codec"
)

const (
	ibeaconUUIDIndex  = 4
	ibeaconMajorIndex = 20
	ibeaconMinorIndex = 22
	ibeaconPowerIndex = 24
	ibeaconMinDataLen = 25
)

// IBeacon is the proximity beacon layout inside a manufacturer specific
// structure of Apple's company ID: a 128-bit big endian UUID, two 16-bit
// big endian numbers (major/minor) and a signed calibrated power byte.
// Unlike the discovery decoders this format has no meaningful partial
// interpretation, so construction fails below 25 data bytes.
type IBeacon struct {
	ManufacturerSpecific
	beaconUUID uuid.UUID
	major      int
	minor      int
	power      int
}

// NewIBeacon builds an IBeacon from a wire triple. It returns an error when
// data holds fewer than 25 bytes.
func NewIBeacon(length, typ int, data []byte, companyID int) (*IBeacon, error) {
	if len(data) < ibeaconMinDataLen {
		return nil, fmt.Errorf("iBeacon requires at least %d data bytes, got %d", ibeaconMinDataLen, len(data))
	}
	b := &IBeacon{
		ManufacturerSpecific: ManufacturerSpecific{
			Structure: Structure{length: length, typ: typ, data: data},
			companyID: companyID,
		},
	}
	b.beaconUUID, _ = codec.From128(data, ibeaconUUIDIndex, false)
	b.major = codec.Uint16BE(data, ibeaconMajorIndex)
	b.minor = codec.Uint16BE(data, ibeaconMinorIndex)
	b.power = int(int8(data[ibeaconPowerIndex]))
	return b, nil
}

// UUID returns the proximity UUID.
func (b *IBeacon) UUID() uuid.UUID { return b.beaconUUID }

// SetUUID replaces the proximity UUID, rewriting the 16 raw bytes in place.
func (b *IBeacon) SetUUID(u uuid.UUID) {
	b.beaconUUID = u
	copy(b.data[ibeaconUUIDIndex:ibeaconUUIDIndex+16], u[:])
}

func (b *IBeacon) Major() int { return b.major }

func (b *IBeacon) SetMajor(major int) error {
	if major < 0 || 0xFFFF < major {
		return fmt.Errorf("major is out of the valid range: %d", major)
	}
	b.major = major
	b.data[ibeaconMajorIndex] = byte(major >> 8)
	b.data[ibeaconMajorIndex+1] = byte(major)
	return nil
}

func (b *IBeacon) Minor() int { return b.minor }

func (b *IBeacon) SetMinor(minor int) error {
	if minor < 0 || 0xFFFF < minor {
		return fmt.Errorf("minor is out of the valid range: %d", minor)
	}
	b.minor = minor
	b.data[ibeaconMinorIndex] = byte(minor >> 8)
	b.data[ibeaconMinorIndex+1] = byte(minor)
	return nil
}

// Power returns the calibrated power in dBm.
func (b *IBeacon) Power() int { return b.power }

func (b *IBeacon) SetPower(power int) error {
	if power < -128 || 127 < power {
		return fmt.Errorf("power is out of the valid range: %d", power)
	}
	b.power = power
	b.data[ibeaconPowerIndex] = byte(power)
	return nil
}

func (b *IBeacon) String() string {
	return fmt.Sprintf("IBeacon(UUID=%s,Major=%d,Minor=%d,Power=%d)",
		b.beaconUUID, b.major, b.minor, b.power)
}

func (b *IBeacon) Fields() map[string]any {
	fields := b.baseFields("ibeacon")
	fields["company_id"] = fmt.Sprintf("0x%04X", b.companyID)
	fields["proximity_uuid"] = b.beaconUUID.String()
	fields["major"] = b.major
	fields["minor"] = b.minor
	fields["power_dbm"] = b.power
	return fields
}
