package bleadv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNilPayload(t *testing.T) {
	p := NewParser()
	require.Nil(t, p.Parse(nil))
	require.Nil(t, p.ParseRange(nil, 0, 0))
}

func TestParseInvalidRange(t *testing.T) {
	p := NewParser()
	payload := []byte{0x02, 0x01, 0x06}
	require.Empty(t, p.ParseRange(payload, -1, 3))
	require.Empty(t, p.ParseRange(payload, 0, -1))
	require.Empty(t, p.ParseRange(payload, 3, 1))
	require.Empty(t, p.ParseRange(payload, 10, 1))
}

func TestParseRoundTripWidth(t *testing.T) {
	p := NewParser()
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42}
	payload := append([]byte{byte(len(data) + 1), 0xEE}, data...)
	list := p.Parse(payload)
	require.Len(t, list, 1)
	require.Equal(t, len(data)+1, list[0].Length())
	require.Equal(t, 0xEE, list[0].Type())
	require.Equal(t, data, list[0].Data())
}

func TestParseEarlyTermination(t *testing.T) {
	p := NewParser()
	require.Empty(t, p.Parse([]byte{0x00, 0xFF, 0xFF}))

	// A zero length byte after a valid record stops the scan there.
	list := p.Parse([]byte{0x02, 0x01, 0x06, 0x00, 0x02, 0x0A, 0x05})
	require.Len(t, list, 1)
}

func TestParseTruncatedTrailingRecord(t *testing.T) {
	p := NewParser()
	// Declares 4 data bytes, only 1 present.
	require.Empty(t, p.Parse([]byte{0x05, 0x01, 0xAA}))

	// A complete record before the truncated one is still returned.
	list := p.Parse([]byte{0x02, 0x0A, 0xF8, 0x05, 0x01, 0xAA})
	require.Len(t, list, 1)
	require.Equal(t, 0x0A, list[0].Type())
}

func TestParseUnknownTypeFallsBackToGeneric(t *testing.T) {
	p := NewParser()
	list := p.Parse([]byte{0x03, 0xEE, 0x12, 0x34})
	require.Len(t, list, 1)
	s, ok := list[0].(*Structure)
	require.True(t, ok)
	require.Equal(t, 3, s.Length())
	require.Equal(t, 0xEE, s.Type())
	require.Equal(t, []byte{0x12, 0x34}, s.Data())
}

func TestRegisterBuilderOutOfRange(t *testing.T) {
	p := NewParser()
	err := p.RegisterBuilder(-1, buildFlags)
	require.ErrorIs(t, err, ErrTypeOutOfRange)
	err = p.RegisterBuilder(256, buildFlags)
	require.ErrorIs(t, err, ErrTypeOutOfRange)
	require.NoError(t, p.RegisterBuilder(0x40, nil))

	err = p.RegisterManufacturerBuilder(-1, buildUcode)
	require.ErrorIs(t, err, ErrCompanyIDOutOfRange)
	err = p.RegisterManufacturerBuilder(0x10000, buildUcode)
	require.ErrorIs(t, err, ErrCompanyIDOutOfRange)
}

func TestRegisterBuilderOverrideOrdering(t *testing.T) {
	p := NewParser()
	var order []string
	builderA := func(length, typ int, data []byte) ADStructure {
		order = append(order, "A")
		return nil
	}
	builderB := func(length, typ int, data []byte) ADStructure {
		order = append(order, "B")
		return nil
	}
	require.NoError(t, p.RegisterBuilder(0xEE, builderA))
	require.NoError(t, p.RegisterBuilder(0xEE, builderB))

	list := p.Parse([]byte{0x02, 0xEE, 0x01})
	require.Len(t, list, 1)
	// B registered last, tried first; both returned nil, so the record
	// fell back to a generic structure.
	require.Equal(t, []string{"B", "A"}, order)
	_, generic := list[0].(*Structure)
	require.True(t, generic)

	order = nil
	winner := func(length, typ int, data []byte) ADStructure {
		order = append(order, "C")
		return NewTxPowerLevel(length, typ, data)
	}
	require.NoError(t, p.RegisterBuilder(0xEE, winner))
	list = p.Parse([]byte{0x02, 0xEE, 0x01})
	require.Len(t, list, 1)
	require.Equal(t, []string{"C"}, order)
	_, typed := list[0].(*TxPowerLevel)
	require.True(t, typed)
}

func TestRegisterManufacturerBuilderOverride(t *testing.T) {
	p := NewParser()
	custom := func(length, typ int, data []byte, companyID int) ADStructure {
		m := NewManufacturerSpecific(length, typ, data, companyID)
		return m
	}
	require.NoError(t, p.RegisterManufacturerBuilder(0x004C, custom))

	// The custom builder now shadows the iBeacon builder.
	payload := append([]byte{0x1A, 0xFF, 0x4C, 0x00, 0x02, 0x15}, make([]byte, 21)...)
	list := p.Parse(payload)
	require.Len(t, list, 1)
	_, isBeacon := list[0].(*IBeacon)
	require.False(t, isBeacon)
	ms, ok := list[0].(*ManufacturerSpecific)
	require.True(t, ok)
	require.Equal(t, 0x004C, ms.CompanyID())
}

func TestManufacturerSpecificShortData(t *testing.T) {
	p := NewParser()
	// One data byte: no company ID can be read, so the record stays a
	// generic structure rather than a vendor record.
	list := p.Parse([]byte{0x02, 0xFF, 0x4C})
	require.Len(t, list, 1)
	_, generic := list[0].(*Structure)
	require.True(t, generic)
}

func TestManufacturerSpecificUnknownCompany(t *testing.T) {
	p := NewParser()
	list := p.Parse([]byte{0x05, 0xFF, 0x5D, 0x00, 0xBE, 0xEF})
	require.Len(t, list, 1)
	ms, ok := list[0].(*ManufacturerSpecific)
	require.True(t, ok)
	require.Equal(t, 0x005D, ms.CompanyID())
	require.Equal(t, []byte{0x5D, 0x00, 0xBE, 0xEF}, ms.Data())
}

func TestParseMultipleStructures(t *testing.T) {
	p := NewParser()
	payload := []byte{
		0x02, 0x01, 0x06, // Flags
		0x03, 0x03, 0x0F, 0x18, // Complete list of 16-bit UUIDs
		0x02, 0x0A, 0xFC, // Tx power -4 dBm
	}
	list := p.Parse(payload)
	require.Len(t, list, 3)

	flags, ok := list[0].(*Flags)
	require.True(t, ok)
	require.True(t, flags.GeneralDiscoverable())
	require.False(t, flags.LegacySupported())

	uuids, ok := list[1].(*UUIDs)
	require.True(t, ok)
	require.Len(t, uuids.List(), 1)
	require.Equal(t, "0000180f-0000-1000-8000-00805f9b34fb", uuids.List()[0].String())

	tx, ok := list[2].(*TxPowerLevel)
	require.True(t, ok)
	require.Equal(t, -4, tx.Level())
}

func TestParseRangeOffsets(t *testing.T) {
	p := NewParser()
	payload := []byte{
		0xAB,             // junk before the structures
		0x02, 0x01, 0x06, // Flags
		0x02, 0x0A, 0x05, // Tx power
	}
	list := p.ParseRange(payload, 1, len(payload)-1)
	require.Len(t, list, 2)

	// Length larger than the payload is clamped.
	list = p.ParseRange(payload, 1, 1000)
	require.Len(t, list, 2)

	// A window covering only the first structure.
	list = p.ParseRange(payload, 1, 3)
	require.Len(t, list, 1)
	require.Equal(t, 0x01, list[0].Type())
}

func TestParseHex(t *testing.T) {
	p := NewParser()
	list, err := p.ParseHex(" |0201_06| ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	_, ok := list[0].(*Flags)
	require.True(t, ok)
}

func TestParseHexOddLength(t *testing.T) {
	p := NewParser()
	_, err := p.ParseHex("ABC")
	require.Error(t, err)
}

func TestDecodeHexPrefix(t *testing.T) {
	data, err := DecodeHex("0x020106")
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01, 0x06}, data)
}
