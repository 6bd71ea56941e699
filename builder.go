package argonpass

import (
	"crypto/rand"
	"errors"
	"io"
)

// Builder defines a public type used by argonpass APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config  Config
	entropy io.Reader
	sink    AuditSink

	built bool
}

// New returns a Builder seeded with the default configuration:
// RFC 9106 second-recommended parameters, no pepper, audit and metrics off.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration. The config is cloned; later
// mutations of the argument do not affect the builder.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithParams sets the cost parameters for new hashes. Parameters are
// validated at Build.
func (b *Builder) WithParams(p Params) *Builder {
	b.config.Params = p
	return b
}

// WithPepper sets a site-wide secret mixed into every derivation. The pepper
// is never serialized into hash strings; verification requires a hasher
// configured with the same pepper.
func (b *Builder) WithPepper(pepper []byte) *Builder {
	if pepper == nil {
		b.config.Pepper = nil
		return b
	}
	b.config.Pepper = make([]byte, len(pepper))
	copy(b.config.Pepper, pepper)
	return b
}

// WithEntropy replaces the salt randomness source. Production hashers use
// crypto/rand; tests may substitute a deterministic reader for
// salt-independent assertions.
func (b *Builder) WithEntropy(r io.Reader) *Builder {
	b.entropy = r
	return b
}

// WithAuditSink sets the sink audit events are dispatched to. Setting a sink
// does not enable auditing; Config.Audit.Enabled controls that.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.sink = sink
	return b
}

// WithAuditEnabled toggles audit event emission.
func (b *Builder) WithAuditEnabled(enabled bool) *Builder {
	b.config.Audit.Enabled = enabled
	return b
}

// WithMetricsEnabled toggles operation counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and returns the Hasher. A Builder can be
// used once.
func (b *Builder) Build() (*Hasher, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if err := validateParams(b.config.Params); err != nil {
		return nil, err
	}

	b.built = true

	entropy := b.entropy
	if entropy == nil {
		entropy = rand.Reader
	}

	return &Hasher{
		params:  b.config.Params,
		pepper:  b.config.Pepper,
		entropy: entropy,
		metrics: NewMetrics(b.config.Metrics),
		audit:   newAuditDispatcher(b.config.Audit, b.sink),
	}, nil
}
