package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"textsteg/pkg/config"
	"textsteg/pkg/model"
	"textsteg/pkg/stego"
	"time"
)

var (
	ErrEmptyMessage = errors.New("please enter some text to hide")
)

// Encoder hides text in a copy of the image it was created with. The source image is never modified, and every call
// to EncodeText starts over from the source pixels
type Encoder struct {
	source *image.NRGBA
	image  *image.NRGBA
	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

func NewImageEncoder(img *image.NRGBA, iConfig config.ImageEncodeConfig) *Encoder {
	setupStart := time.Now()

	enc := &Encoder{
		source: img,
		image:  ToNRGBA(img),
		config: iConfig,
	}

	enc.stats.Setup = time.Since(setupStart)
	return enc
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Image returns the raster holding the encoded text
func (e *Encoder) Image() *image.NRGBA {
	return e.image
}

func (e *Encoder) Capacity() model.Capacity {
	return CapacityOf(e.image)
}

func (e *Encoder) EncodeText(message string) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	if message == "" {
		return ErrEmptyMessage
	}
	if e.config.Strict {
		if err := stego.ValidateMessage(message); err != nil {
			return err
		}
	}

	requiredBits := stego.RequiredBits(message)
	if capacity := e.Capacity(); !capacity.Fits(requiredBits) {
		return fmt.Errorf("%w: %d bits required, %d available", stego.ErrCapacityExceeded, requiredBits, capacity.AvailableBits)
	}

	e.resetToSource()
	if err := stego.Encode(e.image.Pix, message); err != nil {
		return err
	}
	e.stats.BitsWritten = requiredBits
	e.stats.PixelsTouched = (requiredBits + stego.DataChannelsPerPixel - 1) / stego.DataChannelsPerPixel
	return nil
}

func (e *Encoder) WriteEncodedPNG(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	enc := png.Encoder{CompressionLevel: e.config.PngCompressionLevel}
	return enc.Encode(output, e.image)
}

func (e *Encoder) resetToSource() {
	e.image = ToNRGBA(e.source)
}

// CapacityOf reports how many LSB slots img offers and how long a message it can hold
func CapacityOf(img *image.NRGBA) model.Capacity {
	bounds := img.Bounds()
	availableBits := stego.DataChannelsPerPixel * bounds.Dx() * bounds.Dy()
	return model.Capacity{
		Width:            bounds.Dx(),
		Height:           bounds.Dy(),
		AvailableBits:    availableBits,
		MaxMessageLength: stego.MaxMessageLength(availableBits),
	}
}
