package stego

import (
	"math/rand"
	"textsteg/internal/bits"
	"textsteg/test"
)

func generatePixels(numOfPixels int) []byte {
	return test.GenerateRandomBytes(numOfPixels * ChannelsPerPixel)
}

func generatePixelsWithAlpha(numOfPixels int, alpha byte) []byte {
	pix := generatePixels(numOfPixels)
	for p := alphaChannel; p < len(pix); p += ChannelsPerPixel {
		pix[p] = alpha
	}
	return pix
}

// generateMessage returns text made of code points 1-255, which all survive a round trip
func generateMessage(length int) string {
	runes := make([]rune, length)
	for i := range runes {
		runes[i] = rune(rand.Intn(255) + 1)
	}
	return string(runes)
}

// writeRawBits stores the given bytes in the channel LSBs the same way Encode does, without touching alpha or
// adding a header or terminator
func writeRawBits(pix []byte, raw []byte) {
	br := bits.NewBitReader(raw)
	for p := 0; br.BitsLeftToRead() > 0; p += ChannelsPerPixel {
		for c := 0; c < DataChannelsPerPixel && br.BitsLeftToRead() > 0; c++ {
			pix[p+c] = pix[p+c]&0xFE | br.ReadBit()
		}
	}
}

func pixelsNeededFor(message string) int {
	return (RequiredBits(message) + DataChannelsPerPixel - 1) / DataChannelsPerPixel
}
