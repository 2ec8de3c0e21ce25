package bleadv

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/TakahikoKawasaki/nv-bluetooth/internal/codec"
)

const (
	typeServiceData16  = 0x16
	typeServiceData32  = 0x20
	typeServiceData128 = 0x21
)

// ServiceData is the AD structure of types 0x16, 0x20 and 0x21: a service
// UUID (16, 32 or 128 bit form selected by the type code) followed by
// arbitrary service-defined bytes.
type ServiceData struct {
	Structure
	serviceUUID uuid.UUID
}

// NewServiceData builds a ServiceData structure from a wire triple. The
// service UUID is uuid.Nil when the data is too short for the form the type
// code selects.
func NewServiceData(length, typ int, data []byte) *ServiceData {
	s := &ServiceData{Structure: Structure{length: length, typ: typ, data: data}}
	switch typ {
	case typeServiceData16:
		s.serviceUUID, _ = codec.From16(data, 0, true)
	case typeServiceData32:
		s.serviceUUID, _ = codec.From32(data, 0, true)
	case typeServiceData128:
		s.serviceUUID, _ = codec.From128(data, 0, true)
	}
	return s
}

func (s *ServiceData) ServiceUUID() uuid.UUID { return s.serviceUUID }

func (s *ServiceData) String() string {
	return fmt.Sprintf("ServiceData(ServiceUUID=%s)", s.serviceUUID)
}

func (s *ServiceData) Fields() map[string]any {
	fields := s.baseFields("service_data")
	if s.serviceUUID != uuid.Nil {
		fields["service_uuid"] = s.serviceUUID.String()
	}
	return fields
}
