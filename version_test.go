package rfb

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseProtocolVersion(t *testing.T) {
	var lit [12]byte
	copy(lit[:], "RFB 003.008\n")
	v, err := parseProtocolVersion(lit)
	if err != nil {
		t.Fatalf("parseProtocolVersion: %v", err)
	}
	if v.Major != 3 || v.Minor != 8 {
		t.Fatalf("got %+v, want {3 8}", v)
	}
}

func TestParseProtocolVersionRejectsMalformed(t *testing.T) {
	cases := []string{
		"RFB 003x008\n",
		"XFB 003.008\n",
		"RFB 003.008 ",
		"not a version!",
	}
	for _, s := range cases {
		var lit [12]byte
		copy(lit[:], s)
		if _, err := parseProtocolVersion(lit); !errors.Is(err, ErrProtocolMismatch) {
			t.Errorf("parseProtocolVersion(%q) = %v, want ErrProtocolMismatch", s, err)
		}
	}
}

func TestWriteServerVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := writeServerVersion(&buf); err != nil {
		t.Fatalf("writeServerVersion: %v", err)
	}
	if buf.String() != "RFB 003.008\n" {
		t.Fatalf("got %q, want %q", buf.String(), "RFB 003.008\n")
	}
}
