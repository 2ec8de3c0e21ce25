// Package gatt holds the static GATT-level lookup tables that scanning
// applications often need next to advertising payload decoding: status
// codes and the standard service registry. The advertising parser itself
// never depends on this package.
package gatt

// StatusCode is a GATT status code as defined by the assigned numbers.
type StatusCode int

const (
	StatusSuccess             StatusCode = 0x00
	StatusInvalidHandle       StatusCode = 0x01
	StatusReadNotPermit       StatusCode = 0x02
	StatusWriteNotPermit      StatusCode = 0x03
	StatusInvalidPDU          StatusCode = 0x04
	StatusInsufAuthentication StatusCode = 0x05
	StatusReqNotSupported     StatusCode = 0x06
	StatusInvalidOffset       StatusCode = 0x07
	StatusInsufAuthorization  StatusCode = 0x08
	StatusPrepareQueueFull    StatusCode = 0x09
	StatusNotFound            StatusCode = 0x0A
	StatusNotLong             StatusCode = 0x0B
	StatusInsufKeySize        StatusCode = 0x0C
	StatusInvalidAttrLen      StatusCode = 0x0D
	StatusErrUnlikely         StatusCode = 0x0E
	StatusInsufEncryption     StatusCode = 0x0F
	StatusUnsupportGrpType    StatusCode = 0x10
	StatusInsufResource       StatusCode = 0x11
	StatusNoResources         StatusCode = 0x80
	StatusInternalError       StatusCode = 0x81
	StatusWrongState          StatusCode = 0x82
	StatusDBFull              StatusCode = 0x83
	StatusBusy                StatusCode = 0x84
	StatusError               StatusCode = 0x85
	StatusCmdStarted          StatusCode = 0x86
	StatusIllegalParameter    StatusCode = 0x87
	StatusPending             StatusCode = 0x88
	StatusAuthFail            StatusCode = 0x89
	StatusMore                StatusCode = 0x8A
	StatusInvalidCfg          StatusCode = 0x8B
	StatusServiceStarted      StatusCode = 0x8C
	StatusEncryptedNoMITM     StatusCode = 0x8D
	StatusNotEncrypted        StatusCode = 0x8E
	StatusCongested           StatusCode = 0x8F
	StatusCCCCfgErr           StatusCode = 0xFD
	StatusPrcInProgress       StatusCode = 0xFE
	StatusOutOfRange          StatusCode = 0xFF
)

var statusNames = map[StatusCode]string{
	StatusSuccess:             "SUCCESS",
	StatusInvalidHandle:       "INVALID_HANDLE",
	StatusReadNotPermit:       "READ_NOT_PERMIT",
	StatusWriteNotPermit:      "WRITE_NOT_PERMIT",
	StatusInvalidPDU:          "INVALID_PDU",
	StatusInsufAuthentication: "INSUF_AUTHENTICATION",
	StatusReqNotSupported:     "REQ_NOT_SUPPORTED",
	StatusInvalidOffset:       "INVALID_OFFSET",
	StatusInsufAuthorization:  "INSUF_AUTHORIZATION",
	StatusPrepareQueueFull:    "PREPARE_Q_FULL",
	StatusNotFound:            "NOT_FOUND",
	StatusNotLong:             "NOT_LONG",
	StatusInsufKeySize:        "INSUF_KEY_SIZE",
	StatusInvalidAttrLen:      "INVALID_ATTR_LEN",
	StatusErrUnlikely:         "ERR_UNLIKELY",
	StatusInsufEncryption:     "INSUF_ENCRYPTION",
	StatusUnsupportGrpType:    "UNSUPPORT_GRP_TYPE",
	StatusInsufResource:       "INSUF_RESOURCE",
	StatusNoResources:         "NO_RESOURCES",
	StatusInternalError:       "INTERNAL_ERROR",
	StatusWrongState:          "WRONG_STATE",
	StatusDBFull:              "DB_FULL",
	StatusBusy:                "BUSY",
	StatusError:               "ERROR",
	StatusCmdStarted:          "CMD_STARTED",
	StatusIllegalParameter:    "ILLEGAL_PARAMETER",
	StatusPending:             "PENDING",
	StatusAuthFail:            "AUTH_FAIL",
	StatusMore:                "MORE",
	StatusInvalidCfg:          "INVALID_CFG",
	StatusServiceStarted:      "SERVICE_STARTED",
	StatusEncryptedNoMITM:     "ENCRYPTED_NO_MITM",
	StatusNotEncrypted:        "NOT_ENCRYPTED",
	StatusCongested:           "CONGESTED",
	StatusCCCCfgErr:           "CCC_CFG_ERR",
	StatusPrcInProgress:       "PRC_IN_PROGRESS",
	StatusOutOfRange:          "OUT_OF_RANGE",
}

func (c StatusCode) String() string {
	if name, ok := statusNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// StatusCodeByValue looks up a status code by its numeric value.
func StatusCodeByValue(value int) (StatusCode, bool) {
	c := StatusCode(value)
	_, ok := statusNames[c]
	return c, ok
}
