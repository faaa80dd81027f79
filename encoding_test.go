package rfb

import "testing"

func TestEncodingTypeStringKnown(t *testing.T) {
	if got := EncRaw.String(); got != "Raw" {
		t.Fatalf("got %q, want %q", got, "Raw")
	}
	if got := EncDesktopSize.String(); got != "DesktopSize" {
		t.Fatalf("got %q, want %q", got, "DesktopSize")
	}
}

func TestEncodingTypeStringUnknown(t *testing.T) {
	got := EncodingType(99999).String()
	want := "EncodingType(99999)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSecurityTypeString(t *testing.T) {
	if got := SecTypeVNCAuth.String(); got != "VNCAuth" {
		t.Fatalf("got %q, want %q", got, "VNCAuth")
	}
	if got := SecurityType(200).String(); got != "Unknown" {
		t.Fatalf("got %q, want %q", got, "Unknown")
	}
}
