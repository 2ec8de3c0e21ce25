package bleadv

import "fmt"

// typeManufacturerSpecific is the AD type code reserved for vendor data.
const typeManufacturerSpecific = 0xFF

// ManufacturerSpecific is the AD structure of type 0xFF: a 16-bit little
// endian company ID followed by vendor-defined bytes.
type ManufacturerSpecific struct {
	Structure
	companyID int
}

// NewManufacturerSpecific builds a generic vendor structure from a wire
// triple and its already extracted company ID.
func NewManufacturerSpecific(length, typ int, data []byte, companyID int) *ManufacturerSpecific {
	return &ManufacturerSpecific{
		Structure: Structure{length: length, typ: typ, data: data},
		companyID: companyID,
	}
}

func (m *ManufacturerSpecific) CompanyID() int { return m.companyID }

func (m *ManufacturerSpecific) SetCompanyID(companyID int) { m.companyID = companyID }

func (m *ManufacturerSpecific) String() string {
	return fmt.Sprintf("ManufacturerSpecific(Length=%d,Type=0x%02X,CompanyID=0x%04X)",
		m.length, m.typ, m.companyID)
}

func (m *ManufacturerSpecific) Fields() map[string]any {
	fields := m.baseFields("manufacturer_specific")
	fields["company_id"] = fmt.Sprintf("0x%04X", m.companyID)
	return fields
}
