package config

import (
	"fmt"
	"image/png"
	"sort"
	"strings"
)

const (
	DefaultPngCompression = "default"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type ImageEncodeConfig struct {
	PngCompressionLevel png.CompressionLevel
	// Strict rejects messages that would not decode back to the same text, instead of silently truncating them
	Strict bool
}

// ParsePngCompression maps the names accepted on the command line and in config files to a png.CompressionLevel
func ParsePngCompression(name string) (png.CompressionLevel, error) {
	level, found := pngCompressionMapping[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return png.DefaultCompression, fmt.Errorf("unknown png compression %q, options are %s", name, strings.Join(PngCompressionNames(), ", "))
	}
	return level, nil
}

func PngCompressionNames() []string {
	names := make([]string, 0, len(pngCompressionMapping))
	for name := range pngCompressionMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
