package bootstrap_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/bootstrap"
)

func TestConfig_Defaults(t *testing.T) {
	cfg, err := bootstrap.Config(nil)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Hash)
	assert.Equal(t, 10, cfg.HashCost)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogOutput)
	assert.False(t, cfg.SeedPinned)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("PASSGEN_LENGTH", "24")
	t.Setenv("PASSGEN_SEED", "42")
	t.Setenv("PASSGEN_COUNT", "3")
	t.Setenv("PASSGEN_FORMAT", "json")
	t.Setenv("PASSGEN_HASH", "true")

	cfg, err := bootstrap.Config(nil)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Length)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.SeedPinned)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Hash)
}

func TestConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PASSGEN_LENGTH", "24")
	t.Setenv("PASSGEN_SEED", "42")

	cfg, err := bootstrap.Config([]string{"-l", "8", "-s", "18446744073709551615", "-log.level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Length)
	assert.Equal(t, ^uint64(0), cfg.Seed)
	assert.True(t, cfg.SeedPinned)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			"negative seed",
			[]string{"-s", "-1"},
			bootstrap.ErrConfigInvalidSeed,
		},
		{
			"seed overflows",
			[]string{"-s", "18446744073709551616"},
			bootstrap.ErrConfigInvalidSeed,
		},
		{
			"seed is not a number",
			[]string{"-s", "foo"},
			bootstrap.ErrConfigInvalidSeed,
		},
		{
			"too long to hash",
			[]string{"-l", "100", "-hash"},
			bootstrap.ErrConfigHashTooLong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bootstrap.Config(tt.args)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"negative length", []string{"-l", "-1"}, "Length"},
		{"length too big", []string{"-l", "4097"}, "Length"},
		{"zero count", []string{"-n", "0"}, "Count"},
		{"unknown format", []string{"-format", "xml"}, "Format"},
		{"cost too low", []string{"-hash.cost", "3"}, "HashCost"},
		{"blank log level", []string{"-log.level", "  "}, "LogLevel"},
		{"unknown log output", []string{"-log.output", "syslog"}, "LogOutput"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bootstrap.Config(tt.args)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestConfig_HashAtMaxLength(t *testing.T) {
	cfg, err := bootstrap.Config([]string{"-l", "72", "-hash"})
	require.NoError(t, err)
	assert.True(t, cfg.Hash)
	assert.Equal(t, 72, cfg.Length)
}

func TestConfig_UnknownFlag(t *testing.T) {
	_, err := bootstrap.Config([]string{"-bogus"})
	assert.Error(t, err)
}
