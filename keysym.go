package rfb

// Key is an X11 keysym, the 32-bit key identifier RFB carries in KeyEvent.
// The set of legal values is open — any uint32 is admissible and passes
// through unchanged; only the well-known names below are given constants,
// grounded on other_examples/mitchellh-go-vnc__client_events.go's keysym
// table plus the standard X11 cursor-key block it doesn't enumerate.
type Key uint32

const (
	KeyBackSpace Key = 0xff08
	KeyTab       Key = 0xff09
	KeyLinefeed  Key = 0xff0a
	KeyClear     Key = 0xff0b
	KeyReturn    Key = 0xff0d

	KeyPause      Key = 0xff13
	KeyScrollLock Key = 0xff14
	KeySysReq     Key = 0xff15
	KeyEscape     Key = 0xff1b

	KeyHome     Key = 0xff50
	KeyLeft     Key = 0xff51
	KeyUp       Key = 0xff52
	KeyRight    Key = 0xff53
	KeyDown     Key = 0xff54
	KeyPageUp   Key = 0xff55
	KeyPageDown Key = 0xff56
	KeyEnd      Key = 0xff57
	KeyInsert   Key = 0xff63

	KeyF1  Key = 0xffbe
	KeyF2  Key = 0xffbf
	KeyF3  Key = 0xffc0
	KeyF4  Key = 0xffc1
	KeyF5  Key = 0xffc2
	KeyF6  Key = 0xffc3
	KeyF7  Key = 0xffc4
	KeyF8  Key = 0xffc5
	KeyF9  Key = 0xffc6
	KeyF10 Key = 0xffc7
	KeyF11 Key = 0xffc8
	KeyF12 Key = 0xffc9

	KeyShiftLeft    Key = 0xffe1
	KeyShiftRight   Key = 0xffe2
	KeyControlLeft  Key = 0xffe3
	KeyControlRight Key = 0xffe4
	KeyCapsLock     Key = 0xffe5
	KeyAltLeft      Key = 0xffe9
	KeyAltRight     Key = 0xffea

	KeyDelete Key = 0xffff
)

// ButtonMask is the bitmask of pointer buttons carried in PointerEvent; bit
// 0 is the leftmost button, bit 1 the middle, bit 2 the right, and so on.
type ButtonMask uint8
