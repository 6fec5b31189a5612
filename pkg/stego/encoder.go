package stego

import (
	"fmt"
	"textsteg/internal/bits"
)

// Encode embeds message into pix in place. pix is a row-major RGBA buffer, 4 bytes per pixel, and the caller must not
// touch it from elsewhere until Encode returns.
//
// When the frame does not fit, ErrCapacityExceeded is returned and pix is left as it was. Otherwise every pixel that
// received at least one bit ends up with Alpha set to 255, and pixels past the frame are not modified.
func Encode(pix []byte, message string) error {
	frame := frameBytes(message)
	requiredBits, availableBits := len(frame)*8, Capacity(pix)
	if requiredBits > availableBits {
		return fmt.Errorf("%w: %d bits required, %d available", ErrCapacityExceeded, requiredBits, availableBits)
	}

	br := bits.NewBitReader(frame)
	for p := 0; br.BitsLeftToRead() > 0; p += ChannelsPerPixel {
		for c := 0; c < DataChannelsPerPixel && br.BitsLeftToRead() > 0; c++ {
			// Clear the LSB and set it to the next frame bit
			pix[p+c] = pix[p+c]&0xFE | br.ReadBit()
		}
		// Premultiplied or composited alpha would destroy the bits we just wrote
		pix[p+alphaChannel] = opaqueAlpha
	}
	return nil
}

// EncodeCopy behaves like Encode but writes to a copy of pix, which is never modified
func EncodeCopy(pix []byte, message string) ([]byte, error) {
	encoded := make([]byte, len(pix))
	copy(encoded, pix)
	if err := Encode(encoded, message); err != nil {
		return nil, err
	}
	return encoded, nil
}
