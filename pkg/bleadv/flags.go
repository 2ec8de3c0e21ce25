package bleadv

import "fmt"

const (
	flagLimitedDiscoverable    = 0x01
	flagGeneralDiscoverable    = 0x02
	flagLegacyNotSupported     = 0x04 // stored inverted on the wire
	flagControllerSimultaneity = 0x08
	flagHostSimultaneity       = 0x10
)

// Flags is the AD structure of type 0x01. Five independent booleans are
// read from the first data octet; missing data leaves every flag false.
// The legacy support bit is stored inverted on the wire ("BR/EDR not
// supported"), so the accessor negates it when data is present.
type Flags struct {
	Structure
	limitedDiscoverable             bool
	generalDiscoverable             bool
	legacySupported                 bool
	controllerSimultaneitySupported bool
	hostSimultaneitySupported       bool
}

// NewFlags builds a Flags structure from a wire triple.
func NewFlags(length, typ int, data []byte) *Flags {
	f := &Flags{Structure: Structure{length: length, typ: typ, data: data}}
	if len(data) >= 1 {
		f.limitedDiscoverable = data[0]&flagLimitedDiscoverable != 0
		f.generalDiscoverable = data[0]&flagGeneralDiscoverable != 0
		f.legacySupported = data[0]&flagLegacyNotSupported == 0
		f.controllerSimultaneitySupported = data[0]&flagControllerSimultaneity != 0
		f.hostSimultaneitySupported = data[0]&flagHostSimultaneity != 0
	}
	return f
}

func (f *Flags) LimitedDiscoverable() bool { return f.limitedDiscoverable }

func (f *Flags) SetLimitedDiscoverable(discoverable bool) {
	f.limitedDiscoverable = discoverable
	f.setBit(flagLimitedDiscoverable, discoverable)
}

func (f *Flags) GeneralDiscoverable() bool { return f.generalDiscoverable }

func (f *Flags) SetGeneralDiscoverable(discoverable bool) {
	f.generalDiscoverable = discoverable
	f.setBit(flagGeneralDiscoverable, discoverable)
}

// LegacySupported reports BR/EDR support. The wire bit means "BR/EDR not
// supported", so the accessor value is the inverse of the raw bit.
func (f *Flags) LegacySupported() bool { return f.legacySupported }

func (f *Flags) SetLegacySupported(supported bool) {
	f.legacySupported = supported
	f.setBit(flagLegacyNotSupported, !supported)
}

func (f *Flags) ControllerSimultaneitySupported() bool {
	return f.controllerSimultaneitySupported
}

func (f *Flags) SetControllerSimultaneitySupported(supported bool) {
	f.controllerSimultaneitySupported = supported
	f.setBit(flagControllerSimultaneity, supported)
}

func (f *Flags) HostSimultaneitySupported() bool { return f.hostSimultaneitySupported }

func (f *Flags) SetHostSimultaneitySupported(supported bool) {
	f.hostSimultaneitySupported = supported
	f.setBit(flagHostSimultaneity, supported)
}

func (f *Flags) setBit(mask byte, value bool) {
	if len(f.data) < 1 {
		return
	}
	if value {
		f.data[0] |= mask
	} else {
		f.data[0] &^= mask
	}
}

func (f *Flags) String() string {
	return fmt.Sprintf("Flags(LimitedDiscoverable=%t,GeneralDiscoverable=%t,"+
		"LegacySupported=%t,ControllerSimultaneitySupported=%t,HostSimultaneitySupported=%t)",
		f.limitedDiscoverable, f.generalDiscoverable, f.legacySupported,
		f.controllerSimultaneitySupported, f.hostSimultaneitySupported)
}

func (f *Flags) Fields() map[string]any {
	fields := f.baseFields("flags")
	fields["limited_discoverable"] = f.limitedDiscoverable
	fields["general_discoverable"] = f.generalDiscoverable
	fields["legacy_supported"] = f.legacySupported
	fields["controller_simultaneity"] = f.controllerSimultaneitySupported
	fields["host_simultaneity"] = f.hostSimultaneitySupported
	return fields
}
