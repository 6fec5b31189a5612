package config

import (
	"errors"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultPort            = "8080"
	DefaultMaxRequestBytes = 64 << 20
)

var (
	ErrNoConfigFile = errors.New("no config file found")
)

// FileConfig is the on-disk YAML configuration. Unset fields are nil so that callers can tell them apart from zero
// values and fall back to flag defaults
type FileConfig struct {
	PngCompression  *string `yaml:"png_compression"`
	Strict          *bool   `yaml:"strict"`
	Port            *string `yaml:"port"`
	LogLevel        *string `yaml:"log_level"`
	MaxRequestBytes *int64  `yaml:"max_request_bytes"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches dir for .textsteg.yaml/.yml or textsteg.yaml/.yml, in that order
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range []string{".textsteg.yaml", ".textsteg.yml", "textsteg.yaml", "textsteg.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfigFile
}

// LoadGlobal loads config.yml from $XDG_CONFIG_HOME/textsteg, or ~/.config/textsteg when XDG_CONFIG_HOME is unset
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, ErrNoConfigFile
	}
	p := filepath.Join(base, "textsteg", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, ErrNoConfigFile
}

// Load returns the config at explicitPath when set. Otherwise the working directory is searched first and the global
// config second. Not finding any file is not an error, an empty FileConfig is returned instead
func Load(explicitPath, workDir string) (FileConfig, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}
	cfg, err := LoadLocal(workDir)
	if err == nil || !errors.Is(err, ErrNoConfigFile) {
		return cfg, err
	}
	cfg, err = LoadGlobal()
	if errors.Is(err, ErrNoConfigFile) {
		return FileConfig{}, nil
	}
	return cfg, err
}

func (fc FileConfig) GetPngCompression() string {
	if fc.PngCompression == nil {
		return DefaultPngCompression
	}
	return *fc.PngCompression
}

// IsStrict defaults to true, so text that cannot round trip is rejected unless explicitly allowed
func (fc FileConfig) IsStrict() bool {
	if fc.Strict == nil {
		return true
	}
	return *fc.Strict
}

func (fc FileConfig) GetPort() string {
	if fc.Port == nil || *fc.Port == "" {
		return DefaultPort
	}
	return *fc.Port
}

func (fc FileConfig) GetMaxRequestBytes() int64 {
	if fc.MaxRequestBytes == nil || *fc.MaxRequestBytes <= 0 {
		return DefaultMaxRequestBytes
	}
	return *fc.MaxRequestBytes
}

func (fc FileConfig) GetLogLevel() slog.Level {
	if fc.LogLevel == nil {
		return slog.LevelInfo
	}
	return ParseLogLevel(*fc.LogLevel)
}

// ParseLogLevel accepts debug, info, warn and error. Anything else maps to info
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ImageEncodeConfig builds the encoder settings from the file values
func (fc FileConfig) ImageEncodeConfig() (ImageEncodeConfig, error) {
	level, err := ParsePngCompression(fc.GetPngCompression())
	if err != nil {
		return ImageEncodeConfig{}, err
	}
	return ImageEncodeConfig{PngCompressionLevel: level, Strict: fc.IsStrict()}, nil
}
