package bleadv

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/TakahikoKawasaki/nv-bluetooth/internal/codec"
)

// EddystoneFrameType identifies one of the four Eddystone frame layouts,
// encoded in the high nibble of the byte following the service UUID.
type EddystoneFrameType int

const (
	EddystoneUIDFrame EddystoneFrameType = iota
	EddystoneURLFrame
	EddystoneTLMFrame
	EddystoneEIDFrame
)

func (t EddystoneFrameType) String() string {
	switch t {
	case EddystoneUIDFrame:
		return "UID"
	case EddystoneURLFrame:
		return "URL"
	case EddystoneTLMFrame:
		return "TLM"
	case EddystoneEIDFrame:
		return "EID"
	default:
		return "UNKNOWN"
	}
}

// Eddystone is the common part of the Eddystone service data family
// (service UUID 0xFEAA).
type Eddystone struct {
	ServiceData
	frameType EddystoneFrameType
}

func newEddystone(length, typ int, data []byte, frameType EddystoneFrameType) Eddystone {
	return Eddystone{ServiceData: *NewServiceData(length, typ, data), frameType: frameType}
}

func (e *Eddystone) FrameType() EddystoneFrameType { return e.frameType }

func (e *Eddystone) String() string {
	return fmt.Sprintf("Eddystone(FrameType=%s)", e.frameType)
}

// eddystoneTxPower reads the calibrated Tx power byte shared by the UID,
// URL and EID frames.
func eddystoneTxPower(data []byte) int {
	if len(data) < 4 {
		return 0
	}
	return int(int8(data[3]))
}

// EddystoneUID is the identity frame: a 10-byte namespace ID followed by a
// 6-byte instance ID.
type EddystoneUID struct {
	Eddystone
	txPower int
}

// NewEddystoneUID builds a UID frame from a wire triple.
func NewEddystoneUID(length, typ int, data []byte) *EddystoneUID {
	return &EddystoneUID{
		Eddystone: newEddystone(length, typ, data, EddystoneUIDFrame),
		txPower:   eddystoneTxPower(data),
	}
}

// TxPower returns the calibrated Tx power at 0 m in dBm.
func (e *EddystoneUID) TxPower() int { return e.txPower }

func (e *EddystoneUID) NamespaceID() []byte { return codec.CopyRange(e.data, 4, 14) }

func (e *EddystoneUID) NamespaceIDString() string {
	return codec.HexString(e.NamespaceID(), true)
}

func (e *EddystoneUID) InstanceID() []byte { return codec.CopyRange(e.data, 14, 20) }

func (e *EddystoneUID) InstanceIDString() string {
	return codec.HexString(e.InstanceID(), true)
}

// BeaconID returns the namespace and instance IDs as one 16-byte value.
func (e *EddystoneUID) BeaconID() []byte { return codec.CopyRange(e.data, 4, 20) }

func (e *EddystoneUID) BeaconIDString() string {
	return codec.HexString(e.BeaconID(), true)
}

func (e *EddystoneUID) String() string {
	return fmt.Sprintf("EddystoneUID(TxPower=%d,NamespaceID=%s,InstanceID=%s)",
		e.txPower, e.NamespaceIDString(), e.InstanceIDString())
}

func (e *EddystoneUID) Fields() map[string]any {
	fields := e.baseFields("eddystone_uid")
	fields["tx_power_dbm"] = e.txPower
	fields["namespace_id"] = e.NamespaceIDString()
	fields["instance_id"] = e.InstanceIDString()
	fields["beacon_id"] = e.BeaconIDString()
	return fields
}

var eddystoneSchemePrefixes = []string{
	"http://www.",
	"https://www.",
	"http://",
	"https://",
}

var eddystoneExpansionCodes = []string{
	".com/", ".org/", ".edu/", ".net/", ".info/", ".biz/", ".gov/",
	".com", ".org", ".edu", ".net", ".info", ".biz", ".gov",
}

// EddystoneURL is the URL frame: a scheme prefix code followed by a
// byte-compressed URL.
type EddystoneURL struct {
	Eddystone
	txPower int
	url     *url.URL
}

// NewEddystoneURL builds a URL frame from a wire triple.
func NewEddystoneURL(length, typ int, data []byte) *EddystoneURL {
	return &EddystoneURL{
		Eddystone: newEddystone(length, typ, data, EddystoneURLFrame),
		txPower:   eddystoneTxPower(data),
		url:       extractEddystoneURL(data),
	}
}

func extractEddystoneURL(data []byte) *url.URL {
	var b strings.Builder
	if len(data) >= 5 && int(data[4]) < len(eddystoneSchemePrefixes) {
		b.WriteString(eddystoneSchemePrefixes[data[4]])
	}
	for i := 5; i < len(data); i++ {
		ch := data[i]
		switch {
		case int(ch) < len(eddystoneExpansionCodes):
			b.WriteString(eddystoneExpansionCodes[ch])
		case 0x20 < ch && ch < 0x7F:
			b.WriteByte(ch)
		}
		// Everything else is dropped without substitution.
	}
	if b.Len() == 0 {
		return nil
	}
	u, err := url.Parse(b.String())
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// TxPower returns the calibrated Tx power at 0 m in dBm.
func (e *EddystoneURL) TxPower() int { return e.txPower }

// URL returns the expanded URL, or nil when the frame held no bytes or the
// expansion was not a valid absolute URL.
func (e *EddystoneURL) URL() *url.URL { return e.url }

func (e *EddystoneURL) String() string {
	return fmt.Sprintf("EddystoneURL(TxPower=%d,URL=%s)", e.txPower, e.url)
}

func (e *EddystoneURL) Fields() map[string]any {
	fields := e.baseFields("eddystone_url")
	fields["tx_power_dbm"] = e.txPower
	if e.url != nil {
		fields["url"] = e.url.String()
	}
	return fields
}

// EddystoneTLM is the telemetry frame: version, battery voltage, beacon
// temperature in 8.8 fixed point, advertisement count and elapsed time.
type EddystoneTLM struct {
	Eddystone
	version            int
	batteryVoltage     int
	beaconTemperature  float32
	advertisementCount int64
	elapsedTime        int64
}

// NewEddystoneTLM builds a TLM frame from a wire triple.
func NewEddystoneTLM(length, typ int, data []byte) *EddystoneTLM {
	e := &EddystoneTLM{
		Eddystone:         newEddystone(length, typ, data, EddystoneTLMFrame),
		beaconTemperature: -128.0,
	}
	if len(data) >= 4 {
		e.version = int(data[3])
	}
	if len(data) >= 6 {
		e.batteryVoltage = codec.Uint16BE(data, 4)
	}
	if len(data) >= 8 {
		e.beaconTemperature = codec.FixedPointToFloat(data, 6)
	}
	if len(data) >= 12 {
		e.advertisementCount = int64(codec.Uint32BE(data, 8))
	}
	if len(data) >= 16 {
		// The raw value counts 100 ms units.
		e.elapsedTime = int64(codec.Uint32BE(data, 12)) * 100
	}
	return e
}

func (e *EddystoneTLM) TLMVersion() int { return e.version }

// BatteryVoltage returns the battery voltage in millivolts.
func (e *EddystoneTLM) BatteryVoltage() int { return e.batteryVoltage }

// BeaconTemperature returns the beacon temperature in degrees Celsius,
// -128 when the frame is too short.
func (e *EddystoneTLM) BeaconTemperature() float32 { return e.beaconTemperature }

func (e *EddystoneTLM) AdvertisementCount() int64 { return e.advertisementCount }

// ElapsedTime returns the time since power-on or reboot in milliseconds.
func (e *EddystoneTLM) ElapsedTime() int64 { return e.elapsedTime }

func (e *EddystoneTLM) String() string {
	return fmt.Sprintf("EddystoneTLM(Version=%d,BatteryVoltage=%d,BeaconTemperature=%g,AdvertisementCount=%d,ElapsedTime=%d)",
		e.version, e.batteryVoltage, e.beaconTemperature, e.advertisementCount, e.elapsedTime)
}

func (e *EddystoneTLM) Fields() map[string]any {
	fields := e.baseFields("eddystone_tlm")
	fields["tlm_version"] = e.version
	fields["battery_voltage_mv"] = e.batteryVoltage
	fields["beacon_temperature_c"] = float64(e.beaconTemperature)
	fields["advertisement_count"] = e.advertisementCount
	fields["elapsed_time_ms"] = e.elapsedTime
	return fields
}

// EddystoneEID is the ephemeral identity frame: an 8-byte opaque identifier.
type EddystoneEID struct {
	Eddystone
	txPower int
}

// NewEddystoneEID builds an EID frame from a wire triple.
func NewEddystoneEID(length, typ int, data []byte) *EddystoneEID {
	return &EddystoneEID{
		Eddystone: newEddystone(length, typ, data, EddystoneEIDFrame),
		txPower:   eddystoneTxPower(data),
	}
}

// TxPower returns the calibrated Tx power at 0 m in dBm.
func (e *EddystoneEID) TxPower() int { return e.txPower }

func (e *EddystoneEID) EID() []byte { return codec.CopyRange(e.data, 4, 12) }

func (e *EddystoneEID) EIDString() string { return codec.HexString(e.EID(), true) }

func (e *EddystoneEID) String() string {
	return fmt.Sprintf("EddystoneEID(TxPower=%d,EID=%s)", e.txPower, e.EIDString())
}

func (e *EddystoneEID) Fields() map[string]any {
	fields := e.baseFields("eddystone_eid")
	fields["tx_power_dbm"] = e.txPower
	fields["eid"] = e.EIDString()
	return fields
}
