// Package bleadv decodes the payload of a BLE advertising or scan-response
// packet into a sequence of typed AD structures. The entry point is Parser:
// build one with NewParser, optionally register extra builders, and feed it
// raw payload bytes. Decoding never fails on malformed or truncated input;
// anything the parser does not recognize is kept as a generic Structure with
// its raw bytes intact.
package bleadv

import (
	"fmt"

	"github.com/TakahikoKawasaki/nv-bluetooth/internal/codec"
)

// ADStructure is one decoded length-prefixed record of an advertising
// payload. Concrete types add typed accessors over the raw data.
type ADStructure interface {
	// Length is the octet count declared on the wire, 1 + len(Data())
	// for well-formed records.
	Length() int
	// Type is the AD type code, 0-255.
	Type() int
	// Data is the raw payload following the type octet. Typed records
	// share this slice with their derived fields, so setters mutate it
	// in place.
	Data() []byte
	// Fields renders the decoded values as a flat map for display and
	// serialization.
	Fields() map[string]any
	String() string
}

// Structure is the generic AD structure and the base of every typed record.
type Structure struct {
	length int
	typ    int
	data   []byte
}

// NewStructure builds a generic AD structure from a wire triple.
func NewStructure(length, typ int, data []byte) *Structure {
	return &Structure{length: length, typ: typ, data: data}
}

func (s *Structure) Length() int { return s.length }

func (s *Structure) SetLength(length int) { s.length = length }

func (s *Structure) Type() int { return s.typ }

func (s *Structure) SetType(typ int) { s.typ = typ }

func (s *Structure) Data() []byte { return s.data }

func (s *Structure) SetData(data []byte) { s.data = data }

func (s *Structure) String() string {
	return fmt.Sprintf("ADStructure(Length=%d,Type=0x%02X)", s.length, s.typ)
}

func (s *Structure) Fields() map[string]any {
	fields := s.baseFields("generic")
	fields["data_hex"] = codec.HexString(s.data, false)
	return fields
}

func (s *Structure) baseFields(kind string) map[string]any {
	return map[string]any{
		"structure": kind,
		"length":    s.length,
		"ad_type":   fmt.Sprintf("0x%02X", s.typ),
	}
}
