package rfb

import (
	"fmt"
	"io"
)

// protocolVersionLiteral is the exact 12-byte ASCII handshake literal this
// server commits to, matching handlers.go's ProtocolVersion constant.
const protocolVersionLiteral = "RFB 003.008\n"

// ProtocolVersion is the parsed "RFB xxx.yyy\n" handshake literal.
type ProtocolVersion struct {
	Major int
	Minor int
}

// String renders the canonical "RFB xxx.yyy\n" form.
func (v ProtocolVersion) String() string {
	return fmt.Sprintf("RFB %03d.%03d\n", v.Major, v.Minor)
}

// parseProtocolVersion parses the fixed 12-byte ASCII form. Any deviation
// from the literal framing ("RFB ", ".", "\n") or non-digit fields fails
// with ErrProtocolMismatch.
func parseProtocolVersion(b [12]byte) (ProtocolVersion, error) {
	framed := string(b[0:4]) == "RFB " && b[7] == '.' && b[11] == '\n'
	for _, i := range []int{4, 5, 6, 8, 9, 10} {
		framed = framed && b[i] >= '0' && b[i] <= '9'
	}
	var v ProtocolVersion
	n, err := fmt.Sscanf(string(b[:]), "RFB %03d.%03d\n", &v.Major, &v.Minor)
	if !framed || err != nil || n != 2 {
		return ProtocolVersion{}, fmt.Errorf("%w: malformed version literal %q", ErrProtocolMismatch, b[:])
	}
	return v, nil
}

// readClientVersion reads the client's 12-byte version literal. The parsed
// value is surfaced for observability only — this server always commits to
// RFB 3.8 regardless of what the client reports.
func readClientVersion(r io.Reader) (ProtocolVersion, error) {
	var buf [12]byte
	if err := readFull(r, buf[:]); err != nil {
		return ProtocolVersion{}, err
	}
	return parseProtocolVersion(buf)
}

func writeServerVersion(w io.Writer) error {
	_, err := w.Write([]byte(protocolVersionLiteral))
	return err
}
