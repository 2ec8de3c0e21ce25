package bleadv

import "fmt"

// TxPowerLevel is the AD structure of type 0x0A, a single signed byte in dBm.
type TxPowerLevel struct {
	Structure
}

// NewTxPowerLevel builds a TxPowerLevel structure from a wire triple.
func NewTxPowerLevel(length, typ int, data []byte) *TxPowerLevel {
	return &TxPowerLevel{Structure: Structure{length: length, typ: typ, data: data}}
}

// Level returns the transmit power in dBm, or 0 when no data is present.
func (t *TxPowerLevel) Level() int {
	if len(t.data) == 0 {
		return 0
	}
	return int(int8(t.data[0]))
}

func (t *TxPowerLevel) String() string {
	return fmt.Sprintf("TxPowerLevel(%+ddBm)", t.Level())
}

func (t *TxPowerLevel) Fields() map[string]any {
	fields := t.baseFields("tx_power_level")
	fields["tx_power_dbm"] = t.Level()
	return fields
}
