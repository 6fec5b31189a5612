package image

import (
	"image"
	"textsteg/pkg/model"
	"textsteg/pkg/stego"
	"time"
)

type Decoder struct {
	image *image.NRGBA
	stats model.DecodeStats
}

// NewImageDecoder wraps img for reading. Images that are sub-images of a larger buffer are copied into a packed buffer
// first, since the frame runs across rows without gaps
func NewImageDecoder(img *image.NRGBA) *Decoder {
	if img.Stride != img.Bounds().Dx()*4 || len(img.Pix) != img.Stride*img.Bounds().Dy() {
		img = ToNRGBA(img)
	}
	return &Decoder{image: img}
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// DecodeText returns stego.ErrNotFound when the image does not hold a message written by an Encoder
func (d *Decoder) DecodeText() (string, error) {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()
	message, err := stego.Decode(d.image.Pix)
	if err != nil {
		return "", err
	}
	d.stats.BitsRead = stego.RequiredBits(message)
	return message, nil
}
