// Package argonpass provides Argon2id password hashing and verification with a
// self-describing PHC-format hash string, optional audit sinks, and lightweight
// operation counters.
//
// The package is designed for concurrent server workloads: Hasher methods are safe
// to call from multiple goroutines after initialization through [Builder.Build].
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// Salt and derived key use the standard base64 alphabet without padding. The
// encoded string carries every parameter needed for verification, so [Hasher.Verify]
// never requires out-of-band parameter knowledge. Decoding is strict: a different
// delimiter, a reordered parameter segment, or padded base64 is rejected as
// [ErrMalformedHash].
//
// # Architecture boundaries
//
// argonpass is the public surface. It exposes [Hasher], [Builder], [Config],
// [Record], and value types (MetricsSnapshot, AuditEvent). Hash-record persistence
// lives in the store sub-package and is never required by the core.
//
// # What this package must NOT do
//
//   - Store or retrieve credentials — callers supply plaintext and receive hashes.
//   - Log plaintext credentials, salts, or derived keys anywhere, including audit
//     events and error messages.
//   - Substitute a non-secure randomness source when entropy is unavailable.
//
// # Performance contract
//
// Hash and Verify are CPU- and memory-bound by design: each invocation allocates a
// working set of Memory KiB for the duration of the derivation. Callers running
// many derivations concurrently must budget for the aggregate. Neither operation
// performs I/O beyond one read from the entropy source during Hash.
package argonpass
