package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "textsteg.yaml", "png_compression: best\nstrict: false\nport: \"9000\"\nlog_level: debug\nmax_request_bytes: 1024\n")

	cfg, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "best", cfg.GetPngCompression())
	assert.False(t, cfg.IsStrict())
	assert.Equal(t, "9000", cfg.GetPort())
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
	assert.Equal(t, int64(1024), cfg.GetMaxRequestBytes())

	encodeConfig, err := cfg.ImageEncodeConfig()
	require.NoError(t, err)
	assert.Equal(t, png.BestCompression, encodeConfig.PngCompressionLevel)
	assert.False(t, encodeConfig.Strict)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "textsteg.yaml", "strict: [not, a, bool\n")
	_, err := LoadFile(p)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	var cfg FileConfig
	assert.Equal(t, DefaultPngCompression, cfg.GetPngCompression())
	assert.True(t, cfg.IsStrict())
	assert.Equal(t, DefaultPort, cfg.GetPort())
	assert.Equal(t, slog.LevelInfo, cfg.GetLogLevel())
	assert.Equal(t, int64(DefaultMaxRequestBytes), cfg.GetMaxRequestBytes())
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "textsteg.yaml", "port: \"1\"\n")
	writeTemp(t, dir, ".textsteg.yaml", "port: \"7\"\n")

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	assert.Equal(t, "7", cfg.GetPort())
}

func TestLoad_FallsBackToGlobal(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "textsteg"), 0o755))
	writeTemp(t, filepath.Join(xdg, "textsteg"), "config.yml", "log_level: error\n")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.GetLogLevel())
}

func TestLoad_NothingFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg.Port)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, ".textsteg.yaml", "port: \"1\"\n")
	explicit := writeTemp(t, t.TempDir(), "custom.yml", "port: \"2\"\n")

	cfg, err := Load(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.GetPort())
}

func TestParsePngCompression(t *testing.T) {
	for name, expected := range map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		" Fast ":  png.BestSpeed,
		"BEST":    png.BestCompression,
	} {
		level, err := ParsePngCompression(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

	_, err := ParsePngCompression("maximum")
	assert.ErrorContains(t, err, "best, default, fast, none")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}
