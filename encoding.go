package rfb

import "fmt"

// EncodingType is a signed 32-bit encoding tag. The set is open: values
// outside the named constants are legal and must be preserved verbatim,
// never rejected — an UpdateRectangle carrying an unrecognized tag is still
// a valid rectangle as far as this package is concerned, since the payload
// itself is opaque, caller-supplied bytes.
type EncodingType int32

// Named encodings. Only EncRaw's payload is constructed by this package;
// the rest are named so callers and logs can refer to what a client
// advertised in SetEncodings.
const (
	EncRaw         EncodingType = 0
	EncCopyRect    EncodingType = 1
	EncRRE         EncodingType = 2
	EncCoRRE       EncodingType = 4
	EncHextile     EncodingType = 5
	EncZlib        EncodingType = 6
	EncTight       EncodingType = 7
	EncTRLE        EncodingType = 15
	EncZRLE        EncodingType = 16
	EncTightPNG    EncodingType = -260
	EncDesktopSize EncodingType = -223
	EncLastRect    EncodingType = -224
	EncCursor      EncodingType = -239
	EncXCursor     EncodingType = -240
	EncAtenHermon  EncodingType = -305
	EncDesktopName EncodingType = -307
	EncPointerPos  EncodingType = -258
)

var encodingNames = map[EncodingType]string{
	EncRaw:         "Raw",
	EncCopyRect:    "CopyRect",
	EncRRE:         "RRE",
	EncCoRRE:       "CoRRE",
	EncHextile:     "Hextile",
	EncZlib:        "Zlib",
	EncTight:       "Tight",
	EncTRLE:        "TRLE",
	EncZRLE:        "ZRLE",
	EncTightPNG:    "TightPNG",
	EncDesktopSize: "DesktopSize",
	EncLastRect:    "LastRect",
	EncCursor:      "Cursor",
	EncXCursor:     "XCursor",
	EncAtenHermon:  "AtenHermon",
	EncDesktopName: "DesktopName",
	EncPointerPos:  "PointerPos",
}

// String returns the well-known name for enc, or its raw tag value if it's
// outside the named set.
func (enc EncodingType) String() string {
	if name, ok := encodingNames[enc]; ok {
		return name
	}
	return fmt.Sprintf("EncodingType(%d)", int32(enc))
}
