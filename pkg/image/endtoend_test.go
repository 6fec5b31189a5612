package image

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"textsteg/pkg/config"
	"textsteg/pkg/stego"
	"textsteg/test"
)

func TestEncodeDecodeThroughPNG(t *testing.T) {
	runImageTestsWithMessageLengthsAndOpaquenessSettings(t, encodeDecodeThroughPNG)
}

func encodeDecodeThroughPNG(t *testing.T, messageLength int, randomizePixelOpaqueness bool) {
	img := test.GenerateImage(testImageSize, testImageSize, randomizePixelOpaqueness)
	message := generateMessage(messageLength)

	encoder := NewImageEncoder(img, config.ImageEncodeConfig{PngCompressionLevel: png.NoCompression, Strict: true})
	if err := encoder.EncodeText(message); err != nil {
		t.Fatalf("Error encoding %d characters: %s", messageLength, err)
	}

	encodedPNG := bytes.NewBuffer(nil)
	if err := encoder.WriteEncodedPNG(encodedPNG); err != nil {
		t.Fatalf("Error writing png: %s", err)
	}

	loaded, err := LoadNRGBA(encodedPNG)
	if err != nil {
		t.Fatalf("Error loading encoded png: %s", err)
	}
	if !bytes.Equal(loaded.Pix, encoder.Image().Pix) {
		t.Fatalf("Pixels changed while going through png")
	}

	decoded, err := NewImageDecoder(loaded).DecodeText()
	if err != nil {
		t.Fatalf("Error decoding %d characters: %s", messageLength, err)
	}
	if decoded != message {
		t.Errorf("Decoded message does not match encoded message of %d characters", messageLength)
	}
}

func TestMessageOneCharacterTooLong(t *testing.T) {
	img := test.GenerateImage(testImageSize, testImageSize, false)
	encoder := NewImageEncoder(img, config.ImageEncodeConfig{})
	err := encoder.EncodeText(generateMessage(maxMessageLengthForTestImage() + 1))
	if !errors.Is(err, stego.ErrCapacityExceeded) {
		t.Errorf("Expected capacity error, got %v", err)
	}
}

func TestLoadNRGBAFromFile(t *testing.T) {
	dir := t.TempDir()
	img := test.GenerateImage(16, 16, true)
	p := filepath.Join(dir, "carrier.png")
	if err := os.WriteFile(p, test.EncodePNG(img), 0o644); err != nil {
		t.Fatalf("Error writing test image: %s", err)
	}

	loaded, err := LoadNRGBAFromFile(p)
	if err != nil {
		t.Fatalf("Error loading image: %s", err)
	}
	if !bytes.Equal(loaded.Pix, img.Pix) {
		t.Errorf("Loaded pixels differ from the written image")
	}

	notAnImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notAnImage, []byte("hello"), 0o644); err != nil {
		t.Fatalf("Error writing test file: %s", err)
	}
	if _, err = LoadNRGBAFromFile(notAnImage); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected invalid image error, got %v", err)
	}
}
