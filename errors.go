package argonpass

import "errors"

var (
	// ErrInvalidParameters is returned when cost parameters fall outside the
	// valid Argon2id ranges (time cost < 1, parallelism < 1, memory below
	// 8 KiB per lane, undersized salt or key).
	ErrInvalidParameters = errors.New("invalid argon2id parameters")

	// ErrEmptyCredential is returned when a zero-length credential is passed
	// to Hash. Empty credentials are rejected by policy rather than hashed.
	ErrEmptyCredential = errors.New("empty credential")

	// ErrEntropyUnavailable is returned when the secure randomness source
	// cannot produce salt bytes. It is never silently substituted with a
	// non-secure source; retrying is a caller-side decision.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrMalformedHash is returned when an encoded hash string does not
	// conform to the PHC format produced by this package. A wrong credential
	// is not malformed: Verify reports that as a false result, not an error.
	ErrMalformedHash = errors.New("malformed hash record")

	// ErrHasherClosed is an exported constant or variable used by the hashing engine.
	ErrHasherClosed = errors.New("hasher closed")
)
