package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var (
	ErrInvalidImage = errors.New("supplied image is invalid")
)

// LoadNRGBA decodes any registered image format and converts it to a tightly packed, non-premultiplied RGBA buffer
func LoadNRGBA(r io.Reader) (*image.NRGBA, error) {
	srcImage, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidImage, err)
	}
	return ToNRGBA(srcImage), nil
}

func LoadNRGBAFromFile(filePath string) (*image.NRGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadNRGBA(f)
}

// ToNRGBA returns a copy of src whose Pix is row-major with no padding between rows, and whose bounds start at 0,0
func ToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Copy rows directly so that non-opaque pixels keep their exact values, drawing would round trip them through
	// premultiplied alpha
	if nrgba, ok := src.(*image.NRGBA); ok {
		rowLength := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			srcOffset := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(img.Pix[y*img.Stride:y*img.Stride+rowLength], nrgba.Pix[srcOffset:srcOffset+rowLength])
		}
		return img
	}

	// TODO: Work with 16-bit images without dropping to 8 bits per channel
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	return img
}
