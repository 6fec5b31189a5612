package cli

import (
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"io"
	"os"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/stego"
)

type encodeTextOpts struct {
	sourceImage    string
	outputImage    string
	message        string
	messageFile    string
	pngCompression string
	strict         bool
}

func encodeTextCommand(a *app) *cobra.Command {
	opts := encodeTextOpts{}

	encodeCmd := &cobra.Command{
		Use:     "encode",
		Example: "textsteg encode --image source.png --output-file secret_image.png --message \"meet at noon\"",
		Short:   "Hide text in an image",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := opts.readMessage()
			if err != nil {
				return err
			}

			encodeConfig, err := resolveEncodeConfig(cmd, opts.pngCompression, opts.strict, a.fileConfig)
			if err != nil {
				return err
			}

			return EncodeTextIntoImage(opts.sourceImage, opts.outputImage, message, encodeConfig, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	encodeCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the text in (it will not be modified)")
	encodeCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the PNG image that will be generated")
	encodeCmd.Flags().StringVar(&opts.message, "message", "", "Text to hide")
	encodeCmd.Flags().StringVar(&opts.messageFile, "message-file", "", "File holding the text to hide, use - for stdin")
	encodeCmd.Flags().StringVar(&opts.pngCompression, "png-compression", config.DefaultPngCompression, "Compression for output png. Options are default, none, fast, best")
	encodeCmd.Flags().BoolVar(&opts.strict, "strict", true, "Reject text with characters that cannot be recovered exactly (above U+00FF, or NUL) instead of truncating them")

	MarkFlagsRequired(encodeCmd, "image", "output-file")
	encodeCmd.MarkFlagsMutuallyExclusive("message", "message-file")
	encodeCmd.MarkFlagsOneRequired("message", "message-file")

	return encodeCmd
}

func (o encodeTextOpts) readMessage() (string, error) {
	if o.messageFile == "" {
		return o.message, nil
	}

	var (
		content []byte
		err     error
	)
	if o.messageFile == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(o.messageFile)
	}
	if err != nil {
		return "", fmt.Errorf("reading message: %w", err)
	}
	return string(content), nil
}

func EncodeTextIntoImage(imageSourcePath, outputPath, message string, encodeConfig config.ImageEncodeConfig, out, progress io.Writer) error {
	logger := logging.BuildLogger().With("image", imageSourcePath)

	s := NewSpinner(progress)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := stegImage.LoadNRGBAFromFile(imageSourcePath)
	if err != nil {
		return err
	}

	s.Prefix = "Encoding text "
	iEncoder := stegImage.NewImageEncoder(srcImage, encodeConfig)
	if err = iEncoder.EncodeText(message); err != nil {
		if errors.Is(err, stego.ErrCapacityExceeded) {
			capacity := iEncoder.Capacity()
			return fmt.Errorf("%w, the image holds up to %s characters", err, humanize.Comma(int64(capacity.MaxMessageLength)))
		}
		return err
	}

	s.Prefix = "Generating output PNG image "
	if err = writeOutputImage(outputPath, iEncoder.WriteEncodedPNG); err != nil {
		return err
	}
	s.Stop()

	outputStat, err := os.Stat(outputPath)
	if err != nil {
		return err
	}

	capacity := iEncoder.Capacity()
	usedBits := stego.RequiredBits(message)
	fmt.Fprintf(out, "Generated %s (%s) with %s characters hidden, using %s of %s available bits (%.2f%%)\n",
		outputPath,
		humanize.Bytes(uint64(outputStat.Size())),
		humanize.Comma(int64(len([]rune(message)))),
		humanize.Comma(int64(usedBits)),
		humanize.Comma(int64(capacity.AvailableBits)),
		float64(usedBits)*100/float64(capacity.AvailableBits),
	)

	stats := iEncoder.Stats()
	logger.Debug("Encode finished",
		"setup", stats.Setup.String(),
		"data_encoding", stats.DataEncoding.String(),
		"output_image_encoding", stats.OutputImageEncoding.String())
	return nil
}

func decodeTextCommand(_ *app) *cobra.Command {
	var encodedImageFile string

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "textsteg decode --source secret_image.png",
		Short:   "Read the text hidden in an image by textsteg",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeTextFromImage(encodedImageFile, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	decodeCommand.Flags().StringVar(&encodedImageFile, "source", "", "Image generated by textsteg to decode")
	MarkFlagsRequired(decodeCommand, "source")
	return decodeCommand
}

func DecodeTextFromImage(encodedMediaFile string, out, progress io.Writer) error {
	s := NewSpinner(progress)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := stegImage.LoadNRGBAFromFile(encodedMediaFile)
	if err != nil {
		return err
	}

	s.Prefix = "Decoding text "
	decoder := stegImage.NewImageDecoder(srcImage)
	message, err := decoder.DecodeText()
	if err != nil {
		return fmt.Errorf("%s: %w", encodedMediaFile, err)
	}
	s.Stop()

	logging.BuildLogger().Debug("Decode finished", "image", encodedMediaFile, "data_decoding", decoder.Stats().DataDecoding.String())
	fmt.Fprintln(out, message)
	return nil
}

// writeOutputImage creates the file at path and fills it with write. The file is removed if writing fails, so no
// partial image is left behind
func writeOutputImage(path string, write func(w io.Writer) error) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = write(outputFile); err != nil {
		outputFile.Close()
		return errors.Join(err, os.Remove(path))
	}
	if err = outputFile.Close(); err != nil {
		return errors.Join(err, os.Remove(path))
	}
	return nil
}
