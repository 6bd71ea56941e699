package argonpass

import (
	"crypto/subtle"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// Hasher defines a public type used by argonpass APIs.
//
// Hasher instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Hasher struct {
	params  Params
	pepper  []byte
	entropy io.Reader
	metrics *Metrics
	audit   *auditDispatcher
	closed  atomic.Bool
}

// Hash derives an Argon2id key from the credential with a fresh random salt
// and returns the encoded PHC hash string.
//
// Hashing the same credential twice yields different strings (different
// salts); both verify against the credential. The only side effect is one
// read from the configured entropy source.
func (h *Hasher) Hash(credential []byte) (string, error) {
	if h.closed.Load() {
		return "", ErrHasherClosed
	}

	if len(credential) == 0 {
		h.metrics.Inc(MetricHashRejected)
		h.emit(auditEventHashRejected, false, ErrEmptyCredential)
		return "", ErrEmptyCredential
	}

	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(h.entropy, salt); err != nil {
		h.metrics.Inc(MetricHashRejected)
		h.emit(auditEventHashRejected, false, ErrEntropyUnavailable)
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	key := argon2.IDKey(
		h.season(credential),
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	rec := &Record{
		Memory:      h.params.Memory,
		Time:        h.params.Time,
		Parallelism: h.params.Parallelism,
		Salt:        salt,
		Key:         key,
	}

	h.metrics.Inc(MetricHashIssued)
	h.emit(auditEventHashIssued, true, nil)

	return rec.String(), nil
}

// Verify reports whether the credential matches the encoded hash string.
//
// The derivation parameters and salt come from the encoded string itself; the
// recomputed key is compared in constant time. A wrong credential is a false
// result, not an error. A string that does not conform to the encoding fails
// with [ErrMalformedHash].
func (h *Hasher) Verify(encoded string, credential []byte) (bool, error) {
	if h.closed.Load() {
		return false, ErrHasherClosed
	}

	rec, err := DecodeString(encoded)
	if err != nil {
		h.metrics.Inc(MetricVerifyMalformed)
		h.emit(auditEventVerifyMalformed, false, err)
		return false, err
	}

	computed := argon2.IDKey(
		h.season(credential),
		rec.Salt,
		rec.Time,
		rec.Memory,
		rec.Parallelism,
		uint32(len(rec.Key)),
	)

	if subtle.ConstantTimeCompare(computed, rec.Key) == 1 {
		h.metrics.Inc(MetricVerifyMatch)
		h.emit(auditEventVerifyMatch, true, nil)
		return true, nil
	}

	h.metrics.Inc(MetricVerifyMismatch)
	h.emit(auditEventVerifyMismatch, false, nil)

	return false, nil
}

// NeedsRehash reports whether the encoded hash was produced with weaker
// parameters than the hasher currently uses, so callers can re-hash on the
// next successful verification.
func (h *Hasher) NeedsRehash(encoded string) (bool, error) {
	if h.closed.Load() {
		return false, ErrHasherClosed
	}

	rec, err := DecodeString(encoded)
	if err != nil {
		h.metrics.Inc(MetricVerifyMalformed)
		h.emit(auditEventVerifyMalformed, false, err)
		return false, err
	}

	needs := h.params.Memory > rec.Memory ||
		h.params.Time > rec.Time ||
		h.params.Parallelism > rec.Parallelism ||
		h.params.KeyLength != uint32(len(rec.Key))

	if needs {
		h.metrics.Inc(MetricRehashFlagged)
		h.emit(auditEventRehashFlagged, true, nil)
	}

	return needs, nil
}

// Params returns the cost parameters the hasher derives new hashes with.
func (h *Hasher) Params() Params {
	return h.params
}

// MetricsSnapshot returns the current operation counters. When metrics are
// disabled the snapshot is empty.
func (h *Hasher) MetricsSnapshot() MetricsSnapshot {
	return h.metrics.Snapshot()
}

// Close drains the audit dispatcher. After Close all operations fail with
// [ErrHasherClosed]. Close is idempotent.
func (h *Hasher) Close() {
	if h.closed.Swap(true) {
		return
	}
	h.audit.Close()
}

// season appends the configured pepper to the credential before derivation.
// The pepper never appears in the encoded string; peppered hashes verify only
// on a hasher configured with the same pepper.
func (h *Hasher) season(credential []byte) []byte {
	if len(h.pepper) == 0 {
		return credential
	}

	out := make([]byte, 0, len(credential)+len(h.pepper))
	out = append(out, credential...)
	out = append(out, h.pepper...)

	return out
}

func (h *Hasher) emit(eventType string, success bool, opErr error) {
	if h.audit == nil {
		return
	}

	event := AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Success:   success,
		Metadata: map[string]string{
			"m": strconv.FormatUint(uint64(h.params.Memory), 10),
			"t": strconv.FormatUint(uint64(h.params.Time), 10),
			"p": strconv.FormatUint(uint64(h.params.Parallelism), 10),
		},
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	h.audit.Emit(event)
}

/*
====================================
PACKAGE-LEVEL CONVENIENCE
====================================
*/

// Hash hashes the credential with the default parameters
// ([RFC9106SecondRecommended]) and the crypto/rand entropy source.
func Hash(credential []byte) (string, error) {
	h, err := New().Build()
	if err != nil {
		return "", err
	}
	defer h.Close()

	return h.Hash(credential)
}

// Verify checks the credential against an encoded hash string produced by any
// hasher without a pepper. The parameters come from the string itself.
func Verify(encoded string, credential []byte) (bool, error) {
	h, err := New().Build()
	if err != nil {
		return false, err
	}
	defer h.Close()

	return h.Verify(encoded, credential)
}
