package rfb

import (
	"bytes"
	"testing"
)

func TestPixelFormatRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		pf   PixelFormat
	}{
		{"BGRX8888", BGRX8888},
		{"16bpp-565", PixelFormat{
			BPP: 16, Depth: 16, BigEndian: 0, TrueColor: 1,
			RedMax: 31, GreenMax: 63, BlueMax: 31,
			RedShift: 11, GreenShift: 5, BlueShift: 0,
		}},
		{"big-endian-32", PixelFormat{
			BPP: 32, Depth: 24, BigEndian: 1, TrueColor: 1,
			RedMax: 255, GreenMax: 255, BlueMax: 255,
			RedShift: 0, GreenShift: 8, BlueShift: 16,
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := c.pf.Serialize(&buf); err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if buf.Len() != pixelFormatWireSize {
				t.Fatalf("serialized to %d bytes, want %d", buf.Len(), pixelFormatWireSize)
			}
			got, err := DeserializePixelFormat(&buf)
			if err != nil {
				t.Fatalf("DeserializePixelFormat: %v", err)
			}
			if got != c.pf {
				t.Fatalf("round trip mismatch: got %+v, want %+v", got, c.pf)
			}
		})
	}
}

func TestPixelFormatEncodeBGRX8888(t *testing.T) {
	cases := []struct {
		name  string
		color Color
		want  []byte
	}{
		{"black", Color{0, 0, 0}, []byte{0x00, 0x00, 0x00, 0x00}},
		{"white", Color{1, 1, 1}, []byte{0xff, 0xff, 0xff, 0x00}},
		{"red", Color{1, 0, 0}, []byte{0x00, 0x00, 0xff, 0x00}},
		{"green", Color{0, 1, 0}, []byte{0x00, 0xff, 0x00, 0x00}},
		{"blue", Color{0, 0, 1}, []byte{0xff, 0x00, 0x00, 0x00}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := BGRX8888.Encode(c.color)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(got, c.want) {
				t.Fatalf("got %x, want %x", got, c.want)
			}
		})
	}
}

func TestPixelFormatEncodeDecodeRoundTrip(t *testing.T) {
	pf := BGRX8888
	in := Color{R: 0.5, G: 0.25, B: 0.75}
	encoded, err := pf.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := pf.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// Truncation loses precision; the round trip should land within one
	// quantization step.
	step := 1.0 / 255.0
	if diff := decoded.R - in.R; diff > step || diff < -step {
		t.Fatalf("R drifted too far: got %v, want near %v", decoded.R, in.R)
	}
}

func TestPixelFormatEncodeUnsupportedBPPYieldsEmpty(t *testing.T) {
	pf := BGRX8888
	pf.BPP = 12
	got, err := pf.Encode(Color{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got))
	}
}

func TestPixelFormatEncodeIndexedColorFails(t *testing.T) {
	pf := BGRX8888
	pf.TrueColor = 0
	if _, err := pf.Encode(Color{}); err != ErrUnsupportedPixelFormat {
		t.Fatalf("got %v, want ErrUnsupportedPixelFormat", err)
	}
}
