package stego

import (
	"bytes"
	"textsteg/internal/bits"
)

// Decode extracts a message previously written by Encode. pix is only read.
//
// Scanning stops at the first whole zero byte. If the bytes before it do not start with MagicHeader the image is
// reported as not holding a message, even if a valid frame could follow further on. ErrNotFound is also returned when
// the buffer runs out before a zero byte is completed.
func Decode(pix []byte) (string, error) {
	var (
		bb        bits.ByteBuilder
		candidate []byte
	)

	pixelsToScan := len(pix) / ChannelsPerPixel
	for p := 0; p < pixelsToScan*ChannelsPerPixel; p += ChannelsPerPixel {
		for c := 0; c < DataChannelsPerPixel; c++ {
			b, complete := bb.WriteBit(pix[p+c] & 1)
			if !complete {
				continue
			}
			if b == Terminator {
				return messageFromCandidate(candidate)
			}
			candidate = append(candidate, b)
		}
	}

	return "", ErrNotFound
}

func messageFromCandidate(candidate []byte) (string, error) {
	if !bytes.HasPrefix(candidate, []byte(MagicHeader)) {
		return "", ErrNotFound
	}
	return bytesToText(candidate[len(MagicHeader):]), nil
}
