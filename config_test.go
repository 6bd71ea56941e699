package argonpass

import "testing"

func TestDefaultConfigUsesSecondRecommended(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Params != RFC9106SecondRecommended {
		t.Fatalf("default params should be the RFC 9106 second-recommended preset, got %+v", cfg.Params)
	}
	if cfg.Audit.Enabled || cfg.Metrics.Enabled {
		t.Fatal("audit and metrics must be off by default")
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, params := range map[string]Params{
		"first recommended":  RFC9106FirstRecommended,
		"second recommended": RFC9106SecondRecommended,
	} {
		if err := validateParams(params); err != nil {
			t.Fatalf("preset %s failed validation: %v", name, err)
		}
	}

	if RFC9106SecondRecommended.Memory != 64*1024 || RFC9106SecondRecommended.Time != 3 || RFC9106SecondRecommended.Parallelism != 4 {
		t.Fatalf("second-recommended preset drifted: %+v", RFC9106SecondRecommended)
	}
	if RFC9106FirstRecommended.Memory != 2*1024*1024 || RFC9106FirstRecommended.Time != 1 {
		t.Fatalf("first-recommended preset drifted: %+v", RFC9106FirstRecommended)
	}
}

func TestWithConfigClonesPepper(t *testing.T) {
	pepper := []byte("secret")

	builder := New().WithConfig(Config{
		Params: fastParams(),
		Pepper: pepper,
	})

	// Mutating the caller's slice after WithConfig must not reach the hasher.
	pepper[0] = 'X'

	hasher, err := builder.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	defer hasher.Close()

	if string(hasher.pepper) != "secret" {
		t.Fatalf("pepper was not cloned: %q", hasher.pepper)
	}
}
