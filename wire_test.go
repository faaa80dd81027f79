package rfb

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadFullShortReadFails(t *testing.T) {
	r := bytes.NewReader([]byte{0x01, 0x02})
	buf := make([]byte, 4)
	if err := readFull(r, buf); !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("got %v, want ErrUnexpectedEnd", err)
	}
}

func TestReadWriteUintRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint16(&buf, 0xabcd); err != nil {
		t.Fatal(err)
	}
	if err := writeUint32(&buf, 0x01020304); err != nil {
		t.Fatal(err)
	}
	got16, err := readUint16(&buf)
	if err != nil || got16 != 0xabcd {
		t.Fatalf("readUint16 = %x, %v", got16, err)
	}
	got32, err := readUint32(&buf)
	if err != nil || got32 != 0x01020304 {
		t.Fatalf("readUint32 = %x, %v", got32, err)
	}
}

func TestReadLengthPrefixedRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint32(&buf, 100); err != nil {
		t.Fatal(err)
	}
	var dst []byte
	if err := readLengthPrefixed(&buf, &dst, 10); !errors.Is(err, ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
}

func TestReadLengthPrefixedReusesBackingArray(t *testing.T) {
	dst := make([]byte, 0, 16)
	var buf bytes.Buffer
	if err := writeUint32(&buf, 4); err != nil {
		t.Fatal(err)
	}
	buf.Write([]byte("abcd"))
	if err := readLengthPrefixed(&buf, &dst, 1024); err != nil {
		t.Fatal(err)
	}
	if string(dst) != "abcd" {
		t.Fatalf("got %q, want %q", dst, "abcd")
	}
	if cap(dst) != 16 {
		t.Fatalf("cap(dst) = %d, want 16 (same backing array)", cap(dst))
	}
}

func TestGrowBufferReusesCapacity(t *testing.T) {
	buf := make([]byte, 0, 8)
	grown := growBuffer(buf, 4)
	if cap(grown) != 8 {
		t.Fatalf("cap(grown) = %d, want 8 (same backing array)", cap(grown))
	}
	grown2 := growBuffer(grown, 32)
	if cap(grown2) < 32 {
		t.Fatalf("cap(grown2) = %d, want >= 32", cap(grown2))
	}
}
