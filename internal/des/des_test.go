package des

import (
	"encoding/hex"
	"testing"
)

// NIST Special Publication 500-20 (1977) DES validation vectors: key,
// plaintext, ciphertext triples that exercise every S-box entry.
var nistVectors = []struct {
	name       string
	key        string
	plaintext  string
	ciphertext string
}{
	{"vector01", "7CA110454A1A6E57", "01A1D6D039776742", "690F5B0D9A26939B"},
	{"vector02", "0131D9619DC1376E", "5CD54CA83DEF57DA", "7A389D10354BD271"},
	{"vector03", "07A1133E4A0B2686", "0248D43806F67172", "868EBB51CAB4599A"},
	{"vector04", "3849674C2602319E", "51454B582DDF440A", "7178876E01F19B2A"},
	{"vector05", "04B915BA43FEB5B6", "42FD443059577FA2", "AF37FB421F8C4095"},
	{"vector06", "0113B970FD34F2CE", "059B5E0851CF143A", "86A560F10EC6D85B"},
	{"vector07", "0170F175468FB5E6", "0756D8E0774761D2", "0CD3DA020021DC09"},
	{"vector08", "43297FAD38E373FE", "762514B829BF486A", "EA676B2CB7DB2B7A"},
	{"vector09", "07A7137045DA2A16", "3BDD119049372802", "DFD64A815CAF1A0F"},
	{"vector10", "04689104C2FD3B2F", "26955F6835AF609A", "5C513C9C4886C088"},
	{"vector11", "37D06BB516CB7546", "164D5E404F275232", "0A2AEEAE3FF4AB77"},
	{"vector12", "1F08260D1AC2465E", "6B056E18759F5CCA", "EF1BF03E5DFA575A"},
	{"vector13", "584023641ABA6176", "004BD6EF09176062", "88BF0DB6D70DEE56"},
	{"vector14", "025816164629B007", "480D39006EE762F2", "A1F9915541020B56"},
	{"vector15", "49793EBC79B3258F", "437540C8698F3CFA", "6FBF1CAFCFFD0556"},
	{"vector16", "4FB05E1515AB73A7", "072D43A077075292", "2F22E49BAB7CA1AC"},
	{"vector17", "49E95D6D4CA229BF", "02FE55778117F12A", "5A6B612CC26CCE4A"},
	{"vector18", "018310DC409B26D6", "1D9D5C5018F728C2", "5F4C038ED12B2E41"},
	{"vector19", "1C587F1C13924FEF", "305532286D6F295A", "63FAC0D034D9F793"},
}

func decodeHex8(t *testing.T, s string) [8]byte {
	t.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	var out [8]byte
	copy(out[:], raw)
	return out
}

func TestNISTVectors(t *testing.T) {
	for _, v := range nistVectors {
		t.Run(v.name, func(t *testing.T) {
			keyBytes := decodeHex8(t, v.key)
			key := beBytesToUint64(keyBytes[:])
			block := decodeHex8(t, v.plaintext)
			want := decodeHex8(t, v.ciphertext)

			encSched := NewEncryptSchedule(key)
			ProcessBlock(&block, encSched)
			if block != want {
				t.Fatalf("encrypt: got %X, want %X", block, want)
			}

			decSched := NewDecryptSchedule(key)
			ProcessBlock(&block, decSched)
			plaintext := decodeHex8(t, v.plaintext)
			if block != plaintext {
				t.Fatalf("decrypt: got %X, want %X", block, plaintext)
			}
		})
	}
}

func TestRoundTripArbitraryKey(t *testing.T) {
	key := uint64(0x0123456789ABCDEF)
	var block [8]byte
	copy(block[:], []byte("ABCDEFGH"))
	original := block

	ProcessBlock(&block, NewEncryptSchedule(key))
	if block == original {
		t.Fatalf("ciphertext unexpectedly equals plaintext")
	}
	ProcessBlock(&block, NewDecryptSchedule(key))
	if block != original {
		t.Fatalf("round trip: got %X, want %X", block, original)
	}
}
