package image

import (
	"errors"
	"image"
	"testing"
	"textsteg/pkg/config"
	"textsteg/pkg/stego"
	"textsteg/test"
)

func TestDecodeImageWithoutMessage(t *testing.T) {
	decoder := NewImageDecoder(image.NewNRGBA(image.Rect(0, 0, 40, 40)))
	if _, err := decoder.DecodeText(); !errors.Is(err, stego.ErrNotFound) {
		t.Errorf("Expected not found for blank image, got %v", err)
	}
	if decoder.Stats().BitsRead != 0 {
		t.Errorf("Expected no bits read for blank image, got %d", decoder.Stats().BitsRead)
	}
}

func TestDecodeSubImage(t *testing.T) {
	img := test.GenerateImage(40, 40, false)
	sub := img.SubImage(image.Rect(10, 10, 30, 30)).(*image.NRGBA)

	encoder := NewImageEncoder(sub, config.ImageEncodeConfig{})
	if err := encoder.EncodeText("inside"); err != nil {
		t.Fatalf("Error encoding text: %s", err)
	}

	// Write the encoded pixels back into the parent image, then decode from a sub-image view
	encoded := encoder.Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x+10, y+10, encoded.NRGBAAt(x, y))
		}
	}

	decoded, err := NewImageDecoder(img.SubImage(image.Rect(10, 10, 30, 30)).(*image.NRGBA)).DecodeText()
	if err != nil {
		t.Fatalf("Error decoding sub-image: %s", err)
	}
	if decoded != "inside" {
		t.Errorf("Expected %q, got %q", "inside", decoded)
	}
}
