package argonpass

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testRecord() *Record {
	return &Record{
		Memory:      65536,
		Time:        3,
		Parallelism: 4,
		Salt:        bytes.Repeat([]byte{0x01}, 16),
		Key:         bytes.Repeat([]byte{0x02}, 32),
	}
}

func TestRecordStringRoundTrip(t *testing.T) {
	rec := testRecord()
	encoded := rec.String()

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=3,p=4$") {
		t.Fatalf("unexpected PHC prefix: %s", encoded)
	}

	decoded, err := DecodeString(encoded)
	if err != nil {
		t.Fatalf("DecodeString error: %v", err)
	}

	if decoded.Memory != rec.Memory || decoded.Time != rec.Time || decoded.Parallelism != rec.Parallelism {
		t.Fatalf("parameters did not round-trip: %+v", decoded)
	}
	if !bytes.Equal(decoded.Salt, rec.Salt) {
		t.Fatal("salt did not round-trip")
	}
	if !bytes.Equal(decoded.Key, rec.Key) {
		t.Fatal("key did not round-trip")
	}
}

func TestDecodeStringMalformed(t *testing.T) {
	valid := testRecord().String()
	parts := strings.Split(valid, "$")

	rejoin := func(segments []string) string {
		return strings.Join(segments, "$")
	}

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty string", ""},
		{"no leading dollar", strings.TrimPrefix(valid, "$")},
		{"missing delimiter", strings.Replace(valid, "$v=19$", "v=19$", 1)},
		{"extra segment", valid + "$extra"},
		{"unknown algorithm", strings.Replace(valid, "argon2id", "argon2i", 1)},
		{"unsupported version", strings.Replace(valid, "v=19", "v=18", 1)},
		{"non-numeric version", strings.Replace(valid, "v=19", "v=x", 1)},
		{"non-numeric memory", strings.Replace(valid, "m=65536", "m=abc", 1)},
		{"signed memory", strings.Replace(valid, "m=65536", "m=+65536", 1)},
		{"reordered parameters", strings.Replace(valid, "m=65536,t=3,p=4", "t=3,m=65536,p=4", 1)},
		{"missing parameter", strings.Replace(valid, "m=65536,t=3,p=4", "m=65536,t=3", 1)},
		{"zero time cost", strings.Replace(valid, "t=3", "t=0", 1)},
		{"zero parallelism", strings.Replace(valid, "p=4", "p=0", 1)},
		{"parallelism overflow", strings.Replace(valid, "p=4", "p=256", 1)},
		{"padded salt", rejoin([]string{parts[0], parts[1], parts[2], parts[3], parts[4] + "==", parts[5]})},
		{"padded key", valid + "=="},
		{"invalid salt base64", rejoin([]string{parts[0], parts[1], parts[2], parts[3], "!!!!", parts[5]})},
		{"invalid key base64", rejoin([]string{parts[0], parts[1], parts[2], parts[3], parts[4], "????"})},
		{"empty key", rejoin([]string{parts[0], parts[1], parts[2], parts[3], parts[4], ""})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeString(tc.encoded); !errors.Is(err, ErrMalformedHash) {
				t.Fatalf("expected ErrMalformedHash, got %v", err)
			}
		})
	}
}

// A corrupted derived key is a mismatch, not a malformed record: the string
// still parses, the recomputed key just cannot match it.
func TestVerifyFlippedKeyBit(t *testing.T) {
	hasher := newTestHasher(t)

	encoded, err := hasher.Hash([]byte("credential"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	segments := strings.Split(encoded, "$")
	keySegment := segments[len(segments)-1]

	// Swap the first character of the key segment for a different base64
	// character. The segment stays valid base64, the decoded key changes.
	replacement := byte('A')
	if keySegment[0] == 'A' {
		replacement = 'B'
	}
	segments[len(segments)-1] = string(replacement) + keySegment[1:]
	corrupted := strings.Join(segments, "$")

	if corrupted == encoded {
		t.Fatal("corruption did not change the encoded string")
	}

	ok, err := hasher.Verify(corrupted, []byte("credential"))
	if err != nil {
		t.Fatalf("expected no error for a parseable corrupted key, got %v", err)
	}
	if ok {
		t.Fatal("expected corrupted key to fail verification")
	}
}

func TestGobRoundTrip(t *testing.T) {
	rec := testRecord()

	encoded, err := rec.Gob()
	if err != nil {
		t.Fatalf("Gob error: %v", err)
	}

	decoded, err := DecodeGob(encoded)
	if err != nil {
		t.Fatalf("DecodeGob error: %v", err)
	}

	if decoded.String() != rec.String() {
		t.Fatalf("gob round trip changed the record: %s vs %s", decoded.String(), rec.String())
	}
}

func TestGobEmptyKey(t *testing.T) {
	rec := testRecord()
	rec.Key = nil

	if _, err := rec.Gob(); err == nil {
		t.Fatal("expected Gob of an empty key to fail")
	}
}

func TestDecodeGobMalformed(t *testing.T) {
	if _, err := DecodeGob([]byte("not a gob stream")); !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("expected ErrMalformedHash, got %v", err)
	}
}
