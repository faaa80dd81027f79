package rfb

import (
	"fmt"
	"io"
	"math"
)

// pixelFormatWireSize is the fixed size, in bytes, of a serialized
// PixelFormat: four one-byte fields, three 16-bit maxima, three one-byte
// shifts, and three padding bytes. RFC 6143 §7.4.
const pixelFormatWireSize = 16

// PixelFormat describes how a pixel is laid out on the wire: bits-per-pixel,
// depth, endianness, true-color flag, per-channel maxima and shifts. It's a
// plain value type — copy it freely.
type PixelFormat struct {
	BPP        uint8
	Depth      uint8
	BigEndian  uint8 // 0 or nonzero
	TrueColor  uint8 // 0 or nonzero
	RedMax     uint16
	GreenMax   uint16
	BlueMax    uint16
	RedShift   uint8
	GreenShift uint8
	BlueShift  uint8
}

// BGRX8888 is the canonical preset this server defaults to: 32 bits per
// pixel, 24-bit depth, little-endian, true-color, 8 bits per channel with
// red at bit 16, green at bit 8, blue at bit 0.
var BGRX8888 = PixelFormat{
	BPP: 32, Depth: 24, BigEndian: 0, TrueColor: 1,
	RedMax: 255, GreenMax: 255, BlueMax: 255,
	RedShift: 16, GreenShift: 8, BlueShift: 0,
}

// String renders a PixelFormat for logging.
func (pf PixelFormat) String() string {
	return fmt.Sprintf(
		"{bpp:%d depth:%d big-endian:%d true-color:%d red-max:%d green-max:%d blue-max:%d red-shift:%d green-shift:%d blue-shift:%d}",
		pf.BPP, pf.Depth, pf.BigEndian, pf.TrueColor, pf.RedMax, pf.GreenMax, pf.BlueMax, pf.RedShift, pf.GreenShift, pf.BlueShift)
}

// bytesPerPixel returns ceil(bpp/8), the wire width of one encoded pixel.
func (pf PixelFormat) bytesPerPixel() int {
	return (int(pf.BPP) + 7) / 8
}

// Serialize writes the exact 16-byte wire form of pf.
func (pf PixelFormat) Serialize(w io.Writer) error {
	if err := writeUint8(w, pf.BPP); err != nil {
		return err
	}
	if err := writeUint8(w, pf.Depth); err != nil {
		return err
	}
	if err := writeUint8(w, pf.BigEndian); err != nil {
		return err
	}
	if err := writeUint8(w, pf.TrueColor); err != nil {
		return err
	}
	if err := writeUint16(w, pf.RedMax); err != nil {
		return err
	}
	if err := writeUint16(w, pf.GreenMax); err != nil {
		return err
	}
	if err := writeUint16(w, pf.BlueMax); err != nil {
		return err
	}
	if err := writeUint8(w, pf.RedShift); err != nil {
		return err
	}
	if err := writeUint8(w, pf.GreenShift); err != nil {
		return err
	}
	if err := writeUint8(w, pf.BlueShift); err != nil {
		return err
	}
	return skipPaddingWrite(w, 3)
}

// DeserializePixelFormat reads the 16-byte wire form and returns the
// resulting PixelFormat.
func DeserializePixelFormat(r io.Reader) (PixelFormat, error) {
	var pf PixelFormat
	var err error
	if pf.BPP, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.Depth, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.BigEndian, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.TrueColor, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.RedMax, err = readUint16(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.GreenMax, err = readUint16(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.BlueMax, err = readUint16(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.RedShift, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.GreenShift, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if pf.BlueShift, err = readUint8(r); err != nil {
		return PixelFormat{}, err
	}
	if err := skipPadding(r, 3); err != nil {
		return PixelFormat{}, err
	}
	return pf, nil
}

func skipPaddingWrite(w io.Writer, n int) error {
	_, err := w.Write(make([]byte, n))
	return err
}

// Encode converts color into the exact on-wire byte sequence this pixel
// format describes. Supported bpp values are 8, 16, 24, 32, 64; any other
// value yields a zero-length result (the pixel is skipped). Indexed-color
// mode (TrueColor == 0) isn't supported by this codec and reports
// ErrUnsupportedPixelFormat.
func (pf PixelFormat) Encode(c Color) ([]byte, error) {
	if pf.TrueColor == 0 {
		return nil, ErrUnsupportedPixelFormat
	}

	width := pf.bytesPerPixel()
	switch pf.BPP {
	case 8, 16, 24, 32, 64:
	default:
		return nil, nil
	}

	encoded := uint64(truncateChannel(pf.RedMax, c.R))<<pf.RedShift |
		uint64(truncateChannel(pf.GreenMax, c.G))<<pf.GreenShift |
		uint64(truncateChannel(pf.BlueMax, c.B))<<pf.BlueShift

	out := make([]byte, width)
	if pf.BigEndian != 0 {
		for i := width - 1; i >= 0; i-- {
			out[i] = byte(encoded)
			encoded >>= 8
		}
	} else {
		for i := 0; i < width; i++ {
			out[i] = byte(encoded)
			encoded >>= 8
		}
	}
	return out, nil
}

// Decode is the true-color inverse of Encode: given a raw on-wire pixel of
// exactly bytesPerPixel() bytes, it recovers the Color that produced it,
// modulo the precision lost by truncation in Encode. Indexed-color pixels
// report ErrUnsupportedPixelFormat, same as Encode.
func (pf PixelFormat) Decode(data []byte) (Color, error) {
	if pf.TrueColor == 0 {
		return Color{}, ErrUnsupportedPixelFormat
	}
	width := pf.bytesPerPixel()
	if len(data) != width {
		return Color{}, fmt.Errorf("rfb: pixel data is %d bytes, want %d", len(data), width)
	}

	var encoded uint64
	if pf.BigEndian != 0 {
		for _, b := range data {
			encoded = encoded<<8 | uint64(b)
		}
	} else {
		for i := width - 1; i >= 0; i-- {
			encoded = encoded<<8 | uint64(data[i])
		}
	}

	r := channelFraction(pf.RedMax, uint16((encoded>>pf.RedShift)&channelMask(pf.RedMax)))
	g := channelFraction(pf.GreenMax, uint16((encoded>>pf.GreenShift)&channelMask(pf.GreenMax)))
	b := channelFraction(pf.BlueMax, uint16((encoded>>pf.BlueShift)&channelMask(pf.BlueMax)))
	return Color{R: r, G: g, B: b}, nil
}

// truncateChannel computes floor(max * v) for v in [0,1]: a truncating,
// not rounding, float-to-integer conversion.
func truncateChannel(max uint16, v float64) uint32 {
	return uint32(math.Trunc(float64(max) * clamp01(v)))
}

func channelFraction(max uint16, v uint16) float64 {
	if max == 0 {
		return 0
	}
	return float64(v) / float64(max)
}

func channelMask(max uint16) uint64 {
	// max is documented to be 2^N-1 for some N, so it's already a mask.
	return uint64(max)
}
