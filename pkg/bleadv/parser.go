package bleadv

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/TakahikoKawasaki/nv-bluetooth/internal/codec"
)

var (
	// ErrTypeOutOfRange is returned when a builder is registered for an
	// AD type code outside [0, 255].
	ErrTypeOutOfRange = errors.New("AD type is out of the valid range [0, 255]")
	// ErrCompanyIDOutOfRange is returned when a manufacturer builder is
	// registered for a company ID outside [0, 65535].
	ErrCompanyIDOutOfRange = errors.New("company ID is out of the valid range [0, 65535]")
)

// Parser walks the length-prefixed records of an advertising payload and
// dispatches each one to the registered builders. Builders for a type code
// are tried most-recent-first until one returns non-nil, so registering a
// builder overrides the built-in one without removing it.
//
// Registration takes the write lock; decoding only reads. Concurrent Parse
// calls against a Parser that is not being concurrently mutated are safe.
type Parser struct {
	mu         sync.RWMutex
	builders   map[int][]StructureBuilder
	msBuilders map[int][]ManufacturerBuilder
}

// NewParser returns a Parser with the standard builders registered: flags,
// UUID lists, local name, Tx power, service data, Eddystone frames,
// manufacturer specific data, and the iBeacon and ucode vendor layouts.
func NewParser() *Parser {
	p := &Parser{
		builders:   make(map[int][]StructureBuilder),
		msBuilders: make(map[int][]ManufacturerBuilder),
	}

	p.RegisterManufacturerBuilder(0x004C, buildIBeacon) // Apple, Inc.
	p.RegisterManufacturerBuilder(0x0105, buildUcode)   // Ubiquitous Computing Technology Corporation
	p.RegisterManufacturerBuilder(0x019A, buildUcode)   // T-Engine Forum

	p.RegisterBuilder(0x01, buildFlags)
	p.RegisterBuilder(0x02, buildUUIDs)     // Incomplete List of 16-bit Service Class UUIDs
	p.RegisterBuilder(0x03, buildUUIDs)     // Complete List of 16-bit Service Class UUIDs
	p.RegisterBuilder(0x04, buildUUIDs)     // Incomplete List of 32-bit Service Class UUIDs
	p.RegisterBuilder(0x05, buildUUIDs)     // Complete List of 32-bit Service Class UUIDs
	p.RegisterBuilder(0x06, buildUUIDs)     // Incomplete List of 128-bit Service Class UUIDs
	p.RegisterBuilder(0x07, buildUUIDs)     // Complete List of 128-bit Service Class UUIDs
	p.RegisterBuilder(0x08, buildLocalName) // Shortened Local Name
	p.RegisterBuilder(0x09, buildLocalName) // Complete Local Name
	p.RegisterBuilder(0x0A, buildTxPowerLevel)
	p.RegisterBuilder(0x14, buildUUIDs)       // List of 16-bit Service Solicitation UUIDs
	p.RegisterBuilder(0x15, buildUUIDs)       // List of 128-bit Service Solicitation UUIDs
	p.RegisterBuilder(0x16, buildServiceData) // Service Data - 16-bit UUID
	p.RegisterBuilder(0x16, buildEddystone)   // tried before the plain service data builder
	p.RegisterBuilder(0x1F, buildUUIDs)       // List of 32-bit Service Solicitation UUIDs
	p.RegisterBuilder(0x20, buildServiceData) // Service Data - 32-bit UUID
	p.RegisterBuilder(0x21, buildServiceData) // Service Data - 128-bit UUID
	p.RegisterBuilder(typeManufacturerSpecific, p.buildManufacturerSpecific)

	return p
}

// RegisterBuilder inserts a builder at the head of the list for the given
// AD type code. A nil builder is a no-op.
func (p *Parser) RegisterBuilder(typ int, builder StructureBuilder) error {
	if typ < 0 || 0xFF < typ {
		return fmt.Errorf("%w: %d", ErrTypeOutOfRange, typ)
	}
	if builder == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.builders[typ] = append([]StructureBuilder{builder}, p.builders[typ]...)
	return nil
}

// RegisterManufacturerBuilder inserts a builder at the head of the list for
// the given company ID. A nil builder is a no-op.
func (p *Parser) RegisterManufacturerBuilder(companyID int, builder ManufacturerBuilder) error {
	if companyID < 0 || 0xFFFF < companyID {
		return fmt.Errorf("%w: %d", ErrCompanyIDOutOfRange, companyID)
	}
	if builder == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msBuilders[companyID] = append([]ManufacturerBuilder{builder}, p.msBuilders[companyID]...)
	return nil
}

// Parse decodes a whole advertising payload. It returns nil only when
// payload is nil.
func (p *Parser) Parse(payload []byte) []ADStructure {
	if payload == nil {
		return nil
	}
	return p.ParseRange(payload, 0, len(payload))
}

// ParseRange decodes the records inside payload[offset:offset+length],
// clamped to the payload bounds. Invalid ranges yield an empty sequence,
// never an error: advertising payloads are routinely padded or truncated
// by the radio stack.
func (p *Parser) ParseRange(payload []byte, offset, length int) []ADStructure {
	if payload == nil {
		return nil
	}
	list := make([]ADStructure, 0)
	if offset < 0 || length < 0 || len(payload) <= offset {
		return list
	}
	end := offset + length
	if len(payload) < end {
		end = len(payload)
	}
	for i := offset; i < end; {
		recLen := int(payload[i])
		if recLen == 0 {
			// In-band early termination marker.
			break
		}
		if end-i-1 < recLen {
			// Truncated trailing record.
			break
		}
		typ := int(payload[i+1])
		data := codec.CopyRange(payload, i+2, i+recLen+1)
		list = append(list, p.build(recLen, typ, data))
		i += 1 + recLen
	}
	return list
}

// build tries the registered builders for the type code in order and falls
// back to a generic Structure.
func (p *Parser) build(length, typ int, data []byte) ADStructure {
	for _, builder := range p.structureBuilders(typ) {
		if s := builder(length, typ, data); s != nil {
			return s
		}
	}
	return NewStructure(length, typ, data)
}

// buildManufacturerSpecific is the built-in builder for type 0xFF. It reads
// the little endian company ID and repeats the first-success dispatch
// against the manufacturer builder list for it.
func (p *Parser) buildManufacturerSpecific(length, typ int, data []byte) ADStructure {
	if len(data) < 2 {
		return nil
	}
	companyID := codec.Uint16LE(data, 0)
	for _, builder := range p.manufacturerBuilders(companyID) {
		if s := builder(length, typ, data, companyID); s != nil {
			return s
		}
	}
	return NewManufacturerSpecific(length, typ, data, companyID)
}

// The builder lists are snapshotted under the read lock so that a builder
// body never runs while the lock is held.
func (p *Parser) structureBuilders(typ int) []StructureBuilder {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]StructureBuilder(nil), p.builders[typ]...)
}

func (p *Parser) manufacturerBuilders(companyID int) []ManufacturerBuilder {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]ManufacturerBuilder(nil), p.msBuilders[companyID]...)
}

// ParseHex decodes a hex-encoded advertising payload. Whitespace and the
// separators '|' and '_' are ignored, and an optional 0x prefix is
// accepted.
func (p *Parser) ParseHex(raw string) ([]ADStructure, error) {
	data, err := DecodeHex(raw)
	if err != nil {
		return nil, err
	}
	return p.Parse(data), nil
}

// DecodeHex decodes a hex payload string the way ParseHex does, for callers
// that want the raw bytes.
func DecodeHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
