package store

import (
	"context"
	"errors"
	"time"

	"github.com/credlock/argonpass"
)

// ErrRecordNotFound is returned when no record exists under the given name.
var ErrRecordNotFound = errors.New("hash record not found")

// ErrRecordCorrupt is returned when a stored blob does not decode to a record.
var ErrRecordCorrupt = errors.New("hash record corrupt")

// ErrStoreUnavailable is returned when the backing store cannot be reached.
var ErrStoreUnavailable = errors.New("hash record store unavailable")

// Store persists hash records under caller-chosen names. A ttl of zero means
// no expiry. Implementations must be safe for concurrent use.
type Store interface {
	Save(ctx context.Context, name string, record *argonpass.Record, ttl time.Duration) error
	Load(ctx context.Context, name string) (*argonpass.Record, error)
	Delete(ctx context.Context, name string) error
}

func cloneRecord(rec *argonpass.Record) *argonpass.Record {
	out := &argonpass.Record{
		Memory:      rec.Memory,
		Time:        rec.Time,
		Parallelism: rec.Parallelism,
		Salt:        make([]byte, len(rec.Salt)),
		Key:         make([]byte, len(rec.Key)),
	}
	copy(out.Salt, rec.Salt)
	copy(out.Key, rec.Key)

	return out
}
