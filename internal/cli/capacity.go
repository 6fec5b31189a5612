package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"io"
	stegImage "textsteg/pkg/image"
)

func capacityCommand(_ *app) *cobra.Command {
	var imagePath string

	command := &cobra.Command{
		Use:     "capacity",
		Example: "textsteg capacity --image source.png",
		Short:   "Show how much text an image can hold",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintImageCapacity(imagePath, cmd.OutOrStdout())
		},
	}

	command.Flags().StringVar(&imagePath, "image", "", "Image to inspect")
	MarkFlagsRequired(command, "image")
	return command
}

func PrintImageCapacity(imagePath string, out io.Writer) error {
	img, err := stegImage.LoadNRGBAFromFile(imagePath)
	if err != nil {
		return err
	}

	capacity := stegImage.CapacityOf(img)
	fmt.Fprintf(out, "%s: %dx%d pixels, %s bits available, up to %s characters\n",
		imagePath,
		capacity.Width,
		capacity.Height,
		humanize.Comma(int64(capacity.AvailableBits)),
		humanize.Comma(int64(capacity.MaxMessageLength)),
	)
	return nil
}
