package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/format"
	"go.uber.org/zap/zapcore"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	cfg := Default()
	require.NoError(t, cfg.Validate())
	a.Equal(cal.Zulu, cfg.ZoneMode())
	a.Equal(format.ISOTZ, cfg.LayoutValue())
	_, ok := cfg.PrecisionValue()
	a.False(ok)
	a.Equal(zapcore.WarnLevel, cfg.Level())
	a.Equal(10, cfg.MaxTicks)
	a.Equal(4, cfg.Workers)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for _, tc := range []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "isotime.yaml",
			body: "zone: local\nlayout: compact\nprecision: \"1970-01-01T00:00Z\"\nmax_ticks: 6\nlog_level: debug\n",
		},
		{
			name: "yml",
			file: "isotime.yml",
			body: "zone: local\nlayout: compact\nprecision: \"1970-01-01T00:00Z\"\nmax_ticks: 6\nlog_level: debug\n",
		},
		{
			name: "toml",
			file: "isotime.toml",
			body: "zone = \"local\"\nlayout = \"compact\"\nprecision = \"1970-01-01T00:00Z\"\nmax_ticks = 6\nlog_level = \"debug\"\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			path := filepath.Join(dir, tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))

			cfg, err := Load(path)
			require.NoError(t, err)
			a.Equal(cal.Local, cfg.ZoneMode())
			a.Equal(format.Compact, cfg.LayoutValue())
			p, ok := cfg.PrecisionValue()
			a.True(ok)
			a.Equal(format.Precision{Level: format.PrecMinute, Zulu: true}, p)
			a.Equal(6, cfg.MaxTicks)
			a.Equal(zapcore.DebugLevel, cfg.Level())

			// Unset values keep their defaults.
			a.Equal("NaN", cfg.NaN)
			a.Equal(4, cfg.Workers)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for _, tc := range []struct {
		name string
		file string
		body string
		err  string
	}{
		{"extension", "isotime.json", "{}", `config: unsupported file extension ".json"`},
		{"bad_yaml", "bad.yaml", "zone: [", "config: cannot parse yaml: "},
		{"bad_toml", "bad.toml", "zone = ", "config: cannot parse toml: "},
		{"zone", "zone.yaml", "zone: mars", `config: zone must be zulu or local, got "mars"`},
		{"layout", "layout.yaml", "layout: nope", `config: layout: unknown layout "nope"`},
		{"precision", "precision.yaml", "precision: '1970-1'", `config: unknown precision "1970-1"`},
		{"max_ticks", "ticks.toml", "max_ticks = 0", "config: max_ticks must be at least 1, got 0"},
		{"workers", "workers.toml", "workers = -1", "config: workers must be at least 1, got -1"},
		{"log_level", "level.yaml", "log_level: chatty", "config: "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(dir, tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))

			cfg, err := Load(path)
			require.ErrorIs(t, err, ErrConfig)
			require.ErrorContains(t, err, tc.err)
			assert.Nil(t, cfg)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrConfig)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidatePrecision(t *testing.T) {
	t.Parallel()

	for _, prec := range []string{"", "Z", "1970", "1970-01-01T00:00:00.000Z"} {
		cfg := Default()
		cfg.Precision = prec
		require.NoError(t, cfg.Validate(), prec)
	}

	cfg, err := Parse([]byte("precision: Z\n"), FormatYAML)
	require.NoError(t, err)
	p, ok := cfg.PrecisionValue()
	assert.True(t, ok)
	assert.Equal(t, format.DefaultPrecision, p)
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "toml", FormatTOML.String())
}

func TestAccessorFallbacks(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	cfg := &Config{Zone: "UTC", Layout: "nope", LogLevel: "nope"}
	a.Equal(cal.Zulu, cfg.ZoneMode())
	a.Equal(format.ISOTZ, cfg.LayoutValue())
	a.Equal(zapcore.WarnLevel, cfg.Level())
}
