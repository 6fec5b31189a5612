package stego

import (
	"bytes"
	"errors"
	"testing"
)

func TestTextToBits(t *testing.T) {
	testCases := []struct {
		text     string
		expected []byte
	}{
		{text: "", expected: []byte{}},
		{text: "S", expected: []byte{0, 1, 0, 1, 0, 0, 1, 1}},
		{text: "\x00ÿ", expected: []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1}},
		{text: "Ā", expected: []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{text: "é", expected: []byte{1, 1, 1, 0, 1, 0, 0, 1}},
	}

	for _, tc := range testCases {
		result := TextToBits(tc.text)
		if !bytes.Equal(result, tc.expected) {
			t.Errorf("TextToBits(%q) = %v, expected %v", tc.text, result, tc.expected)
		}
		if len(result)%8 != 0 {
			t.Errorf("TextToBits(%q) produced %d bits, not a multiple of 8", tc.text, len(result))
		}
	}
}

func TestBitsToText(t *testing.T) {
	if text := BitsToText([]byte{0, 1, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1}); text != "hi" {
		t.Errorf("Expected %q, got %q", "hi", text)
	}
	if text := BitsToText([]byte{1, 1, 1, 1, 1, 1, 1, 1, 1}); text != "ÿ" {
		t.Errorf("Expected trailing partial byte to be dropped, got %q", text)
	}

	message := generateMessage(512)
	if text := BitsToText(TextToBits(message)); text != message {
		t.Errorf("Text did not survive conversion to bits and back")
	}
}

func TestCapacityAndRequiredBits(t *testing.T) {
	if RequiredBits("hi") != 64 {
		t.Errorf("Expected 64 bits for %q, got %d", "hi", RequiredBits("hi"))
	}
	if RequiredBits("ñ") != 56 {
		t.Errorf("Expected code points to be counted instead of bytes, got %d", RequiredBits("ñ"))
	}
	if Capacity(make([]byte, 30*ChannelsPerPixel)) != 90 {
		t.Errorf("Expected 90 bits of capacity for 30 pixels")
	}
	if MaxMessageLength(90) != 5 {
		t.Errorf("Expected 5 characters to fit in 90 bits, got %d", MaxMessageLength(90))
	}
	if MaxMessageLength(12) != 0 {
		t.Errorf("Expected no characters to fit in 12 bits, got %d", MaxMessageLength(12))
	}
}

func TestValidateMessage(t *testing.T) {
	if err := ValidateMessage("plain ascii and latin-1: ÿ"); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}
	if err := ValidateMessage("emoji 🙂"); !errors.Is(err, ErrCodePointOutOfRange) {
		t.Errorf("Expected out of range error, got %v", err)
	}
	if err := ValidateMessage("nul\x00inside"); !errors.Is(err, ErrEmbeddedTerminator) {
		t.Errorf("Expected embedded terminator error, got %v", err)
	}
}
