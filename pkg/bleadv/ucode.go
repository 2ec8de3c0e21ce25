package bleadv

import (
	"fmt"
	"regexp"
)

const (
	ucodeVersionIndex = 2
	ucodeValueIndex   = 3
	ucodeStatusIndex  = 19
	ucodePowerIndex   = 20
	ucodeCountIndex   = 21
	ucodeMinDataLen   = 22

	ucodeLowBatteryBit = 0x20
)

var ucodePattern = regexp.MustCompile(`^[0-9A-Fa-f]{32}$`)

// Ucode is the ephemeral tag layout inside a manufacturer specific
// structure: a version byte, a 128-bit tag stored least significant byte
// first, then status, signed power and count bytes. Construction fails
// below 22 data bytes because the fixed layout has no partial reading.
type Ucode struct {
	ManufacturerSpecific
	version int
	ucode   string
	status  int
	power   int
	count   int
}

// NewUcode builds a Ucode from a wire triple. It returns an error when data
// holds fewer than 22 bytes.
func NewUcode(length, typ int, data []byte, companyID int) (*Ucode, error) {
	if len(data) < ucodeMinDataLen {
		return nil, fmt.Errorf("ucode requires at least %d data bytes, got %d", ucodeMinDataLen, len(data))
	}
	u := &Ucode{
		ManufacturerSpecific: ManufacturerSpecific{
			Structure: Structure{length: length, typ: typ, data: data},
			companyID: companyID,
		},
	}
	u.version = int(data[ucodeVersionIndex])
	u.ucode = formatUcode(data)
	u.status = int(data[ucodeStatusIndex])
	u.power = int(int8(data[ucodePowerIndex]))
	u.count = int(data[ucodeCountIndex])
	return u, nil
}

func formatUcode(data []byte) string {
	// The tag is stored least significant byte first.
	out := make([]byte, 0, 32)
	for i := 15; i >= 0; i-- {
		out = append(out, fmt.Sprintf("%02X", data[ucodeValueIndex+i])...)
	}
	return string(out)
}

func (u *Ucode) Version() int { return u.version }

func (u *Ucode) SetVersion(version int) error {
	if version < 0 || 255 < version {
		return fmt.Errorf("version is out of the valid range: %d", version)
	}
	u.version = version
	u.data[ucodeVersionIndex] = byte(version)
	return nil
}

// Ucode returns the tag as a 32-digit upper-case hex string.
func (u *Ucode) Ucode() string { return u.ucode }

// SetUcode replaces the tag from a 32-digit hex string, rewriting the raw
// bytes in their reversed wire order.
func (u *Ucode) SetUcode(ucode string) error {
	if !ucodePattern.MatchString(ucode) {
		return fmt.Errorf("the format of ucode is wrong: %s", ucode)
	}
	u.ucode = ucode
	for i := 0; i < 16; i++ {
		b := hexByte(ucode[i*2])<<4 | hexByte(ucode[i*2+1])
		u.data[ucodeValueIndex+15-i] = b
	}
	return nil
}

func hexByte(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}

func (u *Ucode) Status() int { return u.status }

func (u *Ucode) SetStatus(status int) {
	u.status = status
	u.data[ucodeStatusIndex] = byte(status)
}

func (u *Ucode) BatteryLow() bool { return u.status&ucodeLowBatteryBit != 0 }

// Interval returns the transmission interval in milliseconds encoded in the
// low nibble of the status byte.
func (u *Ucode) Interval() int {
	switch u.status & 0x0F {
	case 0x0:
		return 10
	case 0x1:
		return 20
	case 0x2:
		return 40
	case 0x3:
		return 80
	case 0x4:
		return 160
	case 0x5:
		return 320
	case 0x6:
		return 640
	case 0x7:
		return 1280
	case 0x8:
		return 2560
	case 0x9:
		return 5120
	default:
		return 10240
	}
}

func (u *Ucode) Power() int { return u.power }

func (u *Ucode) SetPower(power int) error {
	if power < -128 || 127 < power {
		return fmt.Errorf("power is out of the valid range: %d", power)
	}
	u.power = power
	u.data[ucodePowerIndex] = byte(power)
	return nil
}

func (u *Ucode) Count() int { return u.count }

func (u *Ucode) SetCount(count int) error {
	if count < 0 || 0xFF < count {
		return fmt.Errorf("count is out of the valid range: %d", count)
	}
	u.count = count
	u.data[ucodeCountIndex] = byte(count)
	return nil
}

func (u *Ucode) String() string {
	return fmt.Sprintf("Ucode(Version=%d,Ucode=%s,Status=%d,BatteryLow=%t,Interval=%d,Power=%d,Count=%d)",
		u.version, u.ucode, u.status, u.BatteryLow(), u.Interval(), u.power, u.count)
}

func (u *Ucode) Fields() map[string]any {
	fields := u.baseFields("ucode")
	fields["company_id"] = fmt.Sprintf("0x%04X", u.companyID)
	fields["version"] = u.version
	fields["ucode"] = u.ucode
	fields["status"] = u.status
	fields["battery_low"] = u.BatteryLow()
	fields["interval_ms"] = u.Interval()
	fields["power_dbm"] = u.power
	fields["count"] = u.count
	return fields
}
