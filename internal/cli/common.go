package cli

import (
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"io"
	"os"
	"textsteg/pkg/config"
	"time"
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

// NewSpinner animates on w only when w is a terminal. Writers that are not files never get spinner frames
func NewSpinner(w io.Writer) *spinner.Spinner {
	f, ok := w.(*os.File)
	if !ok {
		s := spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(w))
		s.Disable()
		return s
	}
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriterFile(f))
}

// resolveEncodeConfig starts from the config file settings and applies the flags that were set on the command line.
// Flags with no counterpart in the file fall back to their own defaults
func resolveEncodeConfig(cmd *cobra.Command, pngCompression string, strict bool, fileConfig config.FileConfig) (config.ImageEncodeConfig, error) {
	encodeConfig, err := fileConfig.ImageEncodeConfig()
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	if cmd.Flags().Changed("png-compression") || fileConfig.PngCompression == nil {
		encodeConfig.PngCompressionLevel, err = config.ParsePngCompression(pngCompression)
		if err != nil {
			return config.ImageEncodeConfig{}, err
		}
	}
	if cmd.Flags().Changed("strict") || fileConfig.Strict == nil {
		encodeConfig.Strict = strict
	}
	return encodeConfig, nil
}
