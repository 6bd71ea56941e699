package argonpass

import "fmt"

const (
	minMemoryPerLaneKiB uint32 = 8
	minSaltLength       uint32 = 8
	minKeyLength        uint32 = 16
)

// Params defines a public type used by argonpass APIs.
//
// Params instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Params struct {
	Memory      uint32 // in KiB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

/*
====================================
RFC 9106 PRESETS
====================================
*/

// RFC9106FirstRecommended is the RFC 9106 "FIRST RECOMMENDED" option for
// Argon2id: a single pass over 2 GiB of memory with four lanes.
var RFC9106FirstRecommended = Params{
	Memory:      2 * 1024 * 1024,
	Time:        1,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// RFC9106SecondRecommended is the RFC 9106 "SECOND RECOMMENDED" option for
// Argon2id: three passes over 64 MiB of memory with four lanes. This is the
// default parameter set.
var RFC9106SecondRecommended = Params{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

/*
====================================
AUDIT / METRICS CONFIG
====================================
*/

// AuditConfig defines a public type used by argonpass APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by argonpass APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

// Config defines a public type used by argonpass APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Params  Params
	Pepper  []byte
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Params: RFC9106SecondRecommended,
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Pepper != nil {
		out.Pepper = make([]byte, len(cfg.Pepper))
		copy(out.Pepper, cfg.Pepper)
	}
	return out
}

func validateParams(p Params) error {
	if p.Time < 1 {
		return fmt.Errorf("%w: time cost must be >= 1, got %d", ErrInvalidParameters, p.Time)
	}
	if p.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be >= 1, got %d", ErrInvalidParameters, p.Parallelism)
	}
	if p.Memory < minMemoryPerLaneKiB*uint32(p.Parallelism) {
		return fmt.Errorf("%w: memory (%d KiB) must be >= %d KiB per lane",
			ErrInvalidParameters, p.Memory, minMemoryPerLaneKiB)
	}
	if p.SaltLength < minSaltLength {
		return fmt.Errorf("%w: salt length must be >= %d bytes, got %d",
			ErrInvalidParameters, minSaltLength, p.SaltLength)
	}
	if p.KeyLength < minKeyLength {
		return fmt.Errorf("%w: key length must be >= %d bytes, got %d",
			ErrInvalidParameters, minKeyLength, p.KeyLength)
	}
	return nil
}
