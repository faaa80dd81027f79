package rfb

import "errors"

// Sentinel errors matching spec's error taxonomy. Use errors.Is against
// these; the concrete errors returned are usually wrapped with fmt.Errorf
// for context.
var (
	// ErrUnexpectedEnd means the stream closed mid-message.
	ErrUnexpectedEnd = errors.New("rfb: unexpected end of stream")

	// ErrProtocolMismatch means the version literal was malformed, or the
	// client selected a security type the server didn't offer.
	ErrProtocolMismatch = errors.New("rfb: protocol mismatch")

	// ErrProtocolViolation means an unknown client message type, or an
	// enumerated field held a value outside its closed set.
	ErrProtocolViolation = errors.New("rfb: protocol violation")

	// ErrAuthenticationFailed means the VNC-auth response didn't match the
	// expected DES encryption of the challenge.
	ErrAuthenticationFailed = errors.New("rfb: authentication failed")

	// ErrUnsupportedPixelFormat means indexed-color encoding was requested;
	// the core only encodes true-color pixel formats.
	ErrUnsupportedPixelFormat = errors.New("rfb: unsupported pixel format")

	// ErrOverflow means a length field exceeded the protocol's
	// representable range.
	ErrOverflow = errors.New("rfb: length overflow")
)
