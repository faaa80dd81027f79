package rfb

// ClientEvent is the tagged union WaitEvent returns: exactly one of the
// concrete event types below. A type switch on the returned value
// dispatches on the variant; the set is closed at exactly six members and
// no more are expected.
type ClientEvent interface {
	clientEvent()
}

// SetPixelFormatEvent reports the client's SetPixelFormat message. The
// session applies this to its own current PixelFormat as a side effect
// before returning the event.
type SetPixelFormatEvent struct {
	PixelFormat PixelFormat
}

// SetEncodingsEvent reports the client's list of encodings in preference
// order. Encodings is freshly allocated per call and is the caller's to
// keep; unlike ClientCutTextEvent.Text, it does not alias the session's
// scratch buffer.
type SetEncodingsEvent struct {
	Encodings []EncodingType
}

// FramebufferUpdateRequestEvent reports a client request for a screen
// region. Incremental is a hint, not a constraint — the server may satisfy
// it with a full update regardless.
type FramebufferUpdateRequestEvent struct {
	Incremental bool
	X, Y        uint16
	Width       uint16
	Height      uint16
}

// KeyEvent reports a key press or release.
type KeyEvent struct {
	Key  Key
	Down bool
}

// PointerEvent reports pointer motion and/or button state.
type PointerEvent struct {
	ButtonMask ButtonMask
	X, Y       uint16
}

// ClientCutTextEvent reports clipboard text pushed by the client. Text
// aliases the session's scratch buffer and is only valid until the next
// WaitEvent call.
type ClientCutTextEvent struct {
	Text []byte
}

func (SetPixelFormatEvent) clientEvent()           {}
func (SetEncodingsEvent) clientEvent()             {}
func (FramebufferUpdateRequestEvent) clientEvent() {}
func (KeyEvent) clientEvent()                      {}
func (PointerEvent) clientEvent()                  {}
func (ClientCutTextEvent) clientEvent()            {}

// UpdateRectangle is one rectangle of a FramebufferUpdate message. Data is
// already the on-wire payload for Encoding; SendFramebufferUpdate writes it
// verbatim and never re-encodes it.
type UpdateRectangle struct {
	X, Y     uint16
	Width    uint16
	Height   uint16
	Encoding EncodingType
	Data     []byte
}
