// Package stego hides text in the least significant bits of a non-premultiplied RGBA pixel buffer.
//
// A message is stored as the frame MagicHeader || message || Terminator. Every byte of the frame is spread MSB first
// over the LSBs of consecutive R, G and B samples, pixel after pixel. Alpha never carries data. Each code point of the
// message occupies a single byte, so only text made of code points 0-255 survives a round trip.
package stego

import (
	"errors"
	"fmt"
	"textsteg/internal/bits"
	"unicode/utf8"
)

const (
	MagicHeader = "STEGO"
	Terminator  = byte(0x00)

	ChannelsPerPixel     = 4
	DataChannelsPerPixel = 3

	alphaChannel = 3
	opaqueAlpha  = 255

	// header plus terminator
	frameOverheadBytes = len(MagicHeader) + 1
)

var (
	ErrCapacityExceeded    = errors.New("text is too long for this image")
	ErrNotFound            = errors.New("no valid hidden message found")
	ErrCodePointOutOfRange = errors.New("message contains a character that does not fit in a single byte")
	ErrEmbeddedTerminator  = errors.New("message contains a NUL character, which would end the hidden message early")
)

// TextToBits converts text into one element per bit, MSB first, 8 per code point. Code points above 255 keep only
// their low 8 bits
func TextToBits(text string) []byte {
	return bits.Unpack(textToBytes(text))
}

// BitsToText consumes bits in groups of 8, mapping each group to the code point with that value. A trailing group of
// fewer than 8 bits is ignored
func BitsToText(unpackedBits []byte) string {
	return bytesToText(bits.Pack(unpackedBits))
}

// RequiredBits is the number of LSB slots needed to store message, header and terminator included
func RequiredBits(message string) int {
	return 8 * (frameOverheadBytes + utf8.RuneCountInString(message))
}

// Capacity is the number of LSB slots available in pix, three per pixel
func Capacity(pix []byte) int {
	return DataChannelsPerPixel * (len(pix) / ChannelsPerPixel)
}

// MaxMessageLength is the longest message, in code points, that fits in a buffer with the given capacity
func MaxMessageLength(capacityBits int) int {
	maxLength := capacityBits/8 - frameOverheadBytes
	if maxLength < 0 {
		return 0
	}
	return maxLength
}

// ValidateMessage reports messages that cannot survive a round trip. Encode does not call it, callers that want
// lossless round trips should
func ValidateMessage(message string) error {
	for idx, r := range message {
		if r > 0xFF {
			return fmt.Errorf("%w: %q at byte offset %d", ErrCodePointOutOfRange, r, idx)
		}
		if r == rune(Terminator) {
			return fmt.Errorf("%w: at byte offset %d", ErrEmbeddedTerminator, idx)
		}
	}
	return nil
}

func frameBytes(message string) []byte {
	frame := make([]byte, 0, frameOverheadBytes+len(message))
	frame = append(frame, textToBytes(MagicHeader+message)...)
	return append(frame, Terminator)
}

func textToBytes(text string) []byte {
	textBytes := make([]byte, 0, len(text))
	for _, r := range text {
		textBytes = append(textBytes, byte(r))
	}
	return textBytes
}

func bytesToText(textBytes []byte) string {
	runes := make([]rune, len(textBytes))
	for idx, b := range textBytes {
		runes[idx] = rune(b)
	}
	return string(runes)
}
