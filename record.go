package argonpass

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	algorithmID = "argon2id"

	// Number of dollar-delimited chunks in the encoded hash string. The
	// leading "$" produces an empty first chunk.
	encodedChunks = 6
)

// Record holds a decoded Argon2id hash: the cost parameters, the salt, and the
// derived key. The credential itself is never part of a Record and cannot be
// recovered from one.
type Record struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	Salt        []byte
	Key         []byte
}

// String returns the encoded hash string using the standard PHC representation
// of the Argon2 algorithm:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// Salt and key are base64-encoded with the standard alphabet, no padding.
// To decode, use [DecodeString].
func (r *Record) String() string {
	b64Salt := base64.RawStdEncoding.EncodeToString(r.Salt)
	b64Key := base64.RawStdEncoding.EncodeToString(r.Key)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		r.Memory,
		r.Time,
		r.Parallelism,
		b64Salt,
		b64Key,
	)
}

// DecodeString decodes a PHC-formatted Argon2id hash string into a Record.
//
// Parsing is strict: the string must contain exactly five dollar-delimited
// segments after the leading "$", the algorithm must be argon2id, the version
// must match the Argon2 version this package derives with, the parameter
// segment must be in m,t,p order with in-range decimal values, and salt and
// key must be unpadded standard base64. Anything else fails with
// [ErrMalformedHash].
func DecodeString(encoded string) (*Record, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != encodedChunks || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected %d dollar-delimited segments, got %d",
			ErrMalformedHash, encodedChunks-1, len(parts)-1)
	}

	if parts[1] != algorithmID {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, parts[1])
	}

	version, err := parseCostField(parts[2], "v", 32)
	if err != nil {
		return nil, err
	}
	if version != uint64(argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	// Field order inside the parameter segment is fixed; "t=3,m=65536,p=4"
	// is rejected even though it names the same parameters.
	fields := strings.Split(parts[3], ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 cost parameters, got %d", ErrMalformedHash, len(fields))
	}

	memory, err := parseCostField(fields[0], "m", 32)
	if err != nil {
		return nil, err
	}
	timeCost, err := parseCostField(fields[1], "t", 32)
	if err != nil {
		return nil, err
	}
	parallelism, err := parseCostField(fields[2], "p", 8)
	if err != nil {
		return nil, err
	}

	if timeCost < 1 || parallelism < 1 || memory < uint64(minMemoryPerLaneKiB)*parallelism {
		return nil, fmt.Errorf("%w: cost parameters out of range", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedHash)
	}
	if uint32(len(salt)) < minSaltLength {
		return nil, fmt.Errorf("%w: salt too short", ErrMalformedHash)
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key encoding", ErrMalformedHash)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty derived key", ErrMalformedHash)
	}

	return &Record{
		Memory:      uint32(memory),
		Time:        uint32(timeCost),
		Parallelism: uint8(parallelism),
		Salt:        salt,
		Key:         key,
	}, nil
}

// parseCostField parses a "k=<decimal>" field. strconv.ParseUint rejects
// signs, spaces, and empty values, which keeps the accepted grammar exactly
// as produced by String.
func parseCostField(field, key string, bits int) (uint64, error) {
	value, ok := strings.CutPrefix(field, key+"=")
	if !ok {
		return 0, fmt.Errorf("%w: missing %s parameter", ErrMalformedHash, key)
	}

	parsed, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s parameter %q", ErrMalformedHash, key, value)
	}

	return parsed, nil
}

// Gob returns the gob-encoded byte slice of the Record. This is the form the
// store sub-package persists when hashes are kept as bytes rather than PHC
// strings.
func (r *Record) Gob() ([]byte, error) {
	if len(r.Key) == 0 {
		return nil, fmt.Errorf("%w: empty derived key", ErrMalformedHash)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("gob encode hash record: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeGob decodes a gob-encoded byte slice produced by [Record.Gob].
func DecodeGob(data []byte) (*Record, error) {
	var rec Record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if len(rec.Key) == 0 {
		return nil, fmt.Errorf("%w: empty derived key", ErrMalformedHash)
	}

	return &rec, nil
}
