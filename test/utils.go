package test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateImage creates an image with random colors. Pixels are opaque unless randomizePixelOpaqueness is set, in
// which case roughly half of them get a random alpha
func GenerateImage(width, height int, randomizePixelOpaqueness bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizePixelOpaqueness && rand.Intn(2) == 0 {
				alpha = randUint8()
			}
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: alpha})
		}
	}
	return img
}

// EncodePNG is a shortcut for tests that need the image as an uploaded file would look
func EncodePNG(img image.Image) []byte {
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
