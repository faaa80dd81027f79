package rfb

// SecurityType is the tagged value exchanged during security negotiation.
// The closed set the core offers is {SecurityNone, SecurityVNCAuth}; the
// vendor tags below are named only so an unexpected client offer list or a
// log line can refer to them.
type SecurityType uint8

const (
	SecTypeInvalid      SecurityType = 0
	SecTypeNone         SecurityType = 1
	SecTypeVNCAuth      SecurityType = 2
	SecTypeTight        SecurityType = 16
	SecTypeVeNCrypt     SecurityType = 19
	SecTypeAtenHermon   SecurityType = 20
	SecTypeAtenUltraVNC SecurityType = 21
	SecTypeAtenTLS      SecurityType = 22
	SecTypeAtenSASL     SecurityType = 23
	SecTypeAtenXVP      SecurityType = 24
)

func (t SecurityType) String() string {
	switch t {
	case SecTypeInvalid:
		return "Invalid"
	case SecTypeNone:
		return "None"
	case SecTypeVNCAuth:
		return "VNCAuth"
	case SecTypeTight:
		return "Tight"
	case SecTypeVeNCrypt:
		return "VeNCrypt"
	case SecTypeAtenHermon:
		return "AtenHermon"
	case SecTypeAtenUltraVNC:
		return "AtenUltraVNC"
	case SecTypeAtenTLS:
		return "AtenTLS"
	case SecTypeAtenSASL:
		return "AtenSASL"
	case SecTypeAtenXVP:
		return "AtenXVP"
	default:
		return "Unknown"
	}
}

// Client-to-server message type bytes, RFC 6143 §7.5.
const (
	cmsgSetPixelFormat           = 0
	cmsgSetEncodings             = 2
	cmsgFramebufferUpdateRequest = 3
	cmsgKeyEvent                 = 4
	cmsgPointerEvent             = 5
	cmsgClientCutText            = 6
)

// Server-to-client message type bytes, RFC 6143 §7.6.
const (
	smsgFramebufferUpdate  = 0
	smsgSetColorMapEntries = 1
	smsgBell               = 2
	smsgServerCutText      = 3
)
