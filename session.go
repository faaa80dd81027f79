package rfb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/blackfin-systems/rfbserver/logger"
)

// Stream is the already-connected, reliable, bidirectional byte stream a
// Session is driven over. TCP acquisition and any framing below the byte
// level are the host's responsibility; the core only ever sees this.
type Stream interface {
	io.Reader
	io.Writer
}

// Session is the post-handshake state for one RFB connection: the
// negotiated ProtocolVersion, the shared_connection flag, the current
// PixelFormat, and a scratch buffer that backs variable-length event
// payloads. One Session per connection; there is no client role here.
type Session struct {
	br *bufio.Reader
	bw *bufio.Writer

	ProtocolVersion  ProtocolVersion
	SharedConnection bool
	pixelFormat      PixelFormat

	scratch []byte

	mu     sync.Mutex
	closed bool
	stream Stream
}

// The pixel format field above stays unexported behind the PixelFormat
// accessor so a caller can't mutate it out from under the session between
// WaitEvent calls.

// PixelFormat returns the session's current pixel format, as last set by
// configuration or a client SetPixelFormat message.
func (s *Session) PixelFormat() PixelFormat { return s.pixelFormat }

// Handshake drives the full RFB 3.8 handshake over stream — version
// exchange, security negotiation and authentication, ClientInit, and
// ServerInit — and returns a ready Session. Handshake errors are surfaced
// before the session is returned: callers never see a half-initialized
// Session.
func Handshake(stream Stream, cfg Config) (*Session, error) {
	br := bufio.NewReader(stream)
	bw := bufio.NewWriter(stream)

	if err := writeServerVersion(bw); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}

	clientVersion, err := readClientVersion(br)
	if err != nil {
		return nil, err
	}

	sec := cfg.security()
	if err := writeUint8(bw, 1); err != nil {
		return nil, err
	}
	if err := writeUint8(bw, uint8(sec.Type())); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}

	chosen, err := readUint8(br)
	if err != nil {
		return nil, err
	}
	if SecurityType(chosen) != sec.Type() {
		logger.Errorf("rfb: handshake: client chose security type %d, offered only %d", chosen, sec.Type())
		return nil, fmt.Errorf("%w: client chose security type %d, offered only %d", ErrProtocolMismatch, chosen, sec.Type())
	}

	authErr := sec.Authenticate(bufferedStream{br, bw})
	if authErr != nil {
		logger.Errorf("rfb: handshake: authentication failed: %v", authErr)
		if err := writeUint32(bw, 1); err != nil {
			return nil, err
		}
		reason := []byte(authFailureReason(authErr))
		if err := writeUint32(bw, uint32(len(reason))); err != nil {
			return nil, err
		}
		if _, err := bw.Write(reason); err != nil {
			return nil, err
		}
		if err := bw.Flush(); err != nil {
			return nil, err
		}
		if errors.Is(authErr, ErrUnexpectedEnd) {
			return nil, authErr
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, authErr)
	}
	if err := writeUint32(bw, 0); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}

	sharedFlag, err := readUint8(br)
	if err != nil {
		return nil, err
	}
	logger.Debugf("rfb: handshake: client version %s, shared=%v", clientVersion, sharedFlag != 0)

	pf := cfg.pixelFormat()
	if err := writeUint16(bw, cfg.Width); err != nil {
		return nil, err
	}
	if err := writeUint16(bw, cfg.Height); err != nil {
		return nil, err
	}
	if err := pf.Serialize(bw); err != nil {
		return nil, err
	}
	if err := writeUint32(bw, uint32(len(cfg.DesktopName))); err != nil {
		return nil, err
	}
	if _, err := bw.Write(cfg.DesktopName); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}

	return &Session{
		br:               br,
		bw:               bw,
		stream:           stream,
		ProtocolVersion:  clientVersion,
		SharedConnection: sharedFlag != 0,
		pixelFormat:      pf,
	}, nil
}

func authFailureReason(err error) string {
	return err.Error()
}

// bufferedStream lets Security.Authenticate read/write through the
// session's bufio pair during the handshake, before a Session exists.
type bufferedStream struct {
	r *bufio.Reader
	w *bufio.Writer
}

func (b bufferedStream) Read(p []byte) (int, error) { return b.r.Read(p) }

func (b bufferedStream) Write(p []byte) (int, error) {
	n, err := b.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, b.w.Flush()
}

// WaitEvent reads and dispatches the next client message. On a clean
// end-of-stream at a message boundary it returns (nil, io.EOF); a short
// read after that boundary returns ErrUnexpectedEnd. An unrecognized
// message type returns ErrProtocolViolation.
func (s *Session) WaitEvent() (ClientEvent, error) {
	var typeBuf [1]byte
	if _, err := io.ReadFull(s.br, typeBuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedEnd, err)
	}

	logger.Debugf("rfb: session: read client message type %d", typeBuf[0])

	switch typeBuf[0] {
	case cmsgSetPixelFormat:
		return s.readSetPixelFormat()
	case cmsgSetEncodings:
		return s.readSetEncodings()
	case cmsgFramebufferUpdateRequest:
		return s.readFramebufferUpdateRequest()
	case cmsgKeyEvent:
		return s.readKeyEvent()
	case cmsgPointerEvent:
		return s.readPointerEvent()
	case cmsgClientCutText:
		return s.readClientCutText()
	default:
		logger.Errorf("rfb: session: unknown client message type %d", typeBuf[0])
		return nil, fmt.Errorf("%w: unknown client message type %d", ErrProtocolViolation, typeBuf[0])
	}
}

func (s *Session) readSetPixelFormat() (ClientEvent, error) {
	if err := skipPadding(s.br, 3); err != nil {
		return nil, err
	}
	pf, err := DeserializePixelFormat(s.br)
	if err != nil {
		return nil, err
	}
	s.pixelFormat = pf
	return SetPixelFormatEvent{PixelFormat: pf}, nil
}

func (s *Session) readSetEncodings() (ClientEvent, error) {
	if err := skipPadding(s.br, 1); err != nil {
		return nil, err
	}
	count, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	s.scratch = growBuffer(s.scratch, int(count)*4)
	if err := readFull(s.br, s.scratch); err != nil {
		return nil, err
	}
	encodings := make([]EncodingType, count)
	for i := range encodings {
		v := uint32(s.scratch[i*4])<<24 | uint32(s.scratch[i*4+1])<<16 | uint32(s.scratch[i*4+2])<<8 | uint32(s.scratch[i*4+3])
		encodings[i] = EncodingType(int32(v))
	}
	return SetEncodingsEvent{Encodings: encodings}, nil
}

func (s *Session) readFramebufferUpdateRequest() (ClientEvent, error) {
	incremental, err := readUint8(s.br)
	if err != nil {
		return nil, err
	}
	x, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	y, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	w, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	h, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	return FramebufferUpdateRequestEvent{
		Incremental: incremental != 0,
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
	}, nil
}

func (s *Session) readKeyEvent() (ClientEvent, error) {
	down, err := readUint8(s.br)
	if err != nil {
		return nil, err
	}
	if err := skipPadding(s.br, 2); err != nil {
		return nil, err
	}
	key, err := readUint32(s.br)
	if err != nil {
		return nil, err
	}
	return KeyEvent{Key: Key(key), Down: down != 0}, nil
}

func (s *Session) readPointerEvent() (ClientEvent, error) {
	mask, err := readUint8(s.br)
	if err != nil {
		return nil, err
	}
	x, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	y, err := readUint16(s.br)
	if err != nil {
		return nil, err
	}
	return PointerEvent{ButtonMask: ButtonMask(mask), X: x, Y: y}, nil
}

// maxClientCutTextLen bounds ClientCutText's length field so a hostile
// 4GB-claiming client can't force an unbounded allocation.
const maxClientCutTextLen = 64 << 20

func (s *Session) readClientCutText() (ClientEvent, error) {
	if err := skipPadding(s.br, 3); err != nil {
		return nil, err
	}
	if err := readLengthPrefixed(s.br, &s.scratch, maxClientCutTextLen); err != nil {
		return nil, err
	}
	return ClientCutTextEvent{Text: s.scratch}, nil
}

// SendFramebufferUpdate writes a FramebufferUpdate message (server message
// type 0) carrying rects through the session's buffered writer and flushes
// it at the end. A message larger than that writer's 4096-byte buffer
// reaches the stream in more than one write.
func (s *Session) SendFramebufferUpdate(rects []UpdateRectangle) error {
	if err := writeUint8(s.bw, smsgFramebufferUpdate); err != nil {
		return err
	}
	if err := skipPaddingWrite(s.bw, 1); err != nil {
		return err
	}
	if len(rects) > math.MaxUint16 {
		logger.Errorf("rfb: session: %d rectangles exceeds uint16 range", len(rects))
		return fmt.Errorf("%w: %d rectangles exceeds uint16 range", ErrOverflow, len(rects))
	}
	logger.Debugf("rfb: session: sending framebuffer update with %d rectangles", len(rects))
	if err := writeUint16(s.bw, uint16(len(rects))); err != nil {
		return err
	}
	for _, rect := range rects {
		if err := writeUint16(s.bw, rect.X); err != nil {
			return err
		}
		if err := writeUint16(s.bw, rect.Y); err != nil {
			return err
		}
		if err := writeUint16(s.bw, rect.Width); err != nil {
			return err
		}
		if err := writeUint16(s.bw, rect.Height); err != nil {
			return err
		}
		if err := writeInt32(s.bw, int32(rect.Encoding)); err != nil {
			return err
		}
		if _, err := s.bw.Write(rect.Data); err != nil {
			return err
		}
	}
	return s.bw.Flush()
}

// SendSetColorMapEntries writes a SetColorMapEntries message (server
// message type 1). Each color's channels are clamped to [0,1] and scaled
// to round(clamp(channel) * 65535).
func (s *Session) SendSetColorMapEntries(first uint16, colors []Color) error {
	if err := writeUint8(s.bw, smsgSetColorMapEntries); err != nil {
		return err
	}
	if err := skipPaddingWrite(s.bw, 1); err != nil {
		return err
	}
	if err := writeUint16(s.bw, first); err != nil {
		return err
	}
	if len(colors) > math.MaxUint16 {
		logger.Errorf("rfb: session: %d colors exceeds uint16 range", len(colors))
		return fmt.Errorf("%w: %d colors exceeds uint16 range", ErrOverflow, len(colors))
	}
	if err := writeUint16(s.bw, uint16(len(colors))); err != nil {
		return err
	}
	for _, c := range colors {
		c = c.Clamp()
		if err := writeUint16(s.bw, scaleChannel16(c.R)); err != nil {
			return err
		}
		if err := writeUint16(s.bw, scaleChannel16(c.G)); err != nil {
			return err
		}
		if err := writeUint16(s.bw, scaleChannel16(c.B)); err != nil {
			return err
		}
	}
	return s.bw.Flush()
}

func scaleChannel16(v float64) uint16 {
	return uint16(math.Round(v * 65535))
}

// SendBell writes the single-byte Bell message (server message type 2).
func (s *Session) SendBell() error {
	if err := writeUint8(s.bw, smsgBell); err != nil {
		return err
	}
	return s.bw.Flush()
}

// SendServerCutText writes a ServerCutText message (server message type
// 3). text is declared ISO-8859-1.
func (s *Session) SendServerCutText(text []byte) error {
	if err := writeUint8(s.bw, smsgServerCutText); err != nil {
		return err
	}
	if err := skipPaddingWrite(s.bw, 3); err != nil {
		return err
	}
	if len(text) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes exceeds uint32 range", ErrOverflow, len(text))
	}
	if err := writeUint32(s.bw, uint32(len(text))); err != nil {
		return err
	}
	if _, err := s.bw.Write(text); err != nil {
		return err
	}
	return s.bw.Flush()
}

// Close releases the underlying stream. Idempotent: a second call is a
// no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if closer, ok := s.stream.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
