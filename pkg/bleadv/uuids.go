package bleadv

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUIDs is the AD structure holding a list of service class or service
// solicitation UUIDs. Each element was reconstructed from 2, 4 or 16 raw
// bytes depending on the AD type code.
type UUIDs struct {
	Structure
	uuids []uuid.UUID
}

// NewUUIDs builds a UUID-list structure from a wire triple and the already
// reconstructed UUIDs.
func NewUUIDs(length, typ int, data []byte, uuids []uuid.UUID) *UUIDs {
	return &UUIDs{Structure: Structure{length: length, typ: typ, data: data}, uuids: uuids}
}

// List returns the UUIDs in wire order.
func (u *UUIDs) List() []uuid.UUID { return u.uuids }

func (u *UUIDs) SetList(uuids []uuid.UUID) { u.uuids = uuids }

func (u *UUIDs) String() string {
	elems := make([]string, len(u.uuids))
	for i, id := range u.uuids {
		elems[i] = id.String()
	}
	return fmt.Sprintf("UUIDs(%s)", strings.Join(elems, ","))
}

func (u *UUIDs) Fields() map[string]any {
	elems := make([]string, len(u.uuids))
	for i, id := range u.uuids {
		elems[i] = id.String()
	}
	fields := u.baseFields("uuids")
	fields["uuids"] = elems
	return fields
}
