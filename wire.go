package rfb

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Every multi-byte integer on the wire is big-endian at the framing level,
// per RFC 6143; encoding/binary carries that discipline throughout this
// file and the rest of the package.

// readFull reads exactly len(buf) bytes, translating a clean EOF or a short
// read into ErrUnexpectedEnd. Callers that need to distinguish "no more
// messages" from "truncated message" call io.ReadFull directly instead (see
// Session.WaitEvent's message-type-byte read).
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedEnd, err)
	}
	return nil
}

func readUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func readInt32(r io.Reader) (int32, error) {
	v, err := readUint32(r)
	return int32(v), err
}

func writeUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeInt32(w io.Writer, v int32) error {
	return writeUint32(w, uint32(v))
}

// skipPadding reads and discards n bytes without validating their content.
// RFC 6143 pads several messages to word boundaries but never gives the
// padding bytes meaning.
func skipPadding(r io.Reader, n int) error {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	return readFull(r, buf)
}

// readLengthPrefixed reads a u32 length followed by that many bytes, into
// dst, growing it if necessary. maxLen guards against a hostile or
// malformed length field; RFC 6143 never sends a value anywhere near it in
// practice, but the field is a full uint32 and must be bounded before it's
// used as a make() size.
func readLengthPrefixed(r io.Reader, dst *[]byte, maxLen uint32) error {
	length, err := readUint32(r)
	if err != nil {
		return err
	}
	if length > maxLen {
		return fmt.Errorf("%w: length field %d exceeds limit %d", ErrOverflow, length, maxLen)
	}
	*dst = growBuffer(*dst, int(length))
	return readFull(r, *dst)
}

// growBuffer returns a slice of exactly n bytes, reusing buf's backing
// array when it's already large enough. This backs the session's scratch
// buffer, which grows to the largest variable-length payload seen so far
// and never shrinks.
func growBuffer(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]byte, n)
}
