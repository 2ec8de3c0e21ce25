package bleadv

import "fmt"

const (
	typeShortenedLocalName = 0x08
	typeCompleteLocalName  = 0x09
)

// LocalName is the AD structure of type 0x08 (shortened) or 0x09 (complete),
// a UTF-8 device name.
type LocalName struct {
	Structure
	name string
}

// NewLocalName builds a LocalName structure from a wire triple.
func NewLocalName(length, typ int, data []byte) *LocalName {
	n := &LocalName{Structure: Structure{length: length, typ: typ, data: data}}
	if len(data) >= 1 {
		n.name = string(data)
	}
	return n
}

func (n *LocalName) Name() string { return n.name }

func (n *LocalName) Shortened() bool { return n.typ == typeShortenedLocalName }

func (n *LocalName) Complete() bool { return n.typ == typeCompleteLocalName }

func (n *LocalName) String() string {
	kind := "COMPLETE"
	if n.Shortened() {
		kind = "SHORTENED"
	}
	return fmt.Sprintf("LocalName(%s,%s)", kind, n.name)
}

func (n *LocalName) Fields() map[string]any {
	fields := n.baseFields("local_name")
	fields["local_name"] = n.name
	fields["complete"] = n.Complete()
	return fields
}
