package bits

// ByteBuilder accumulates single bits, most significant first, into whole bytes
type ByteBuilder struct {
	current       byte
	bitsInCurrent uint
}

// WriteBit appends the LSB of bit. Once 8 bits have been written the assembled byte is returned with complete set,
// and the builder starts over on a fresh byte
func (bb *ByteBuilder) WriteBit(bit byte) (assembled byte, complete bool) {
	bb.current = bb.current<<1 | bit&1
	bb.bitsInCurrent++
	if bb.bitsInCurrent < 8 {
		return 0, false
	}
	assembled = bb.current
	bb.current, bb.bitsInCurrent = 0, 0
	return assembled, true
}

// Unpack expands every byte into 8 elements holding 0 or 1, most significant bit first
func Unpack(bytes []byte) []byte {
	unpacked := make([]byte, 0, len(bytes)*8)
	br := NewBitReader(bytes)
	for br.BitsLeftToRead() > 0 {
		unpacked = append(unpacked, br.ReadBit())
	}
	return unpacked
}

// Pack is the inverse of Unpack. Only the LSB of each element is considered, and a trailing group of fewer than 8
// elements is dropped
func Pack(unpacked []byte) []byte {
	packed := make([]byte, 0, len(unpacked)/8)
	var bb ByteBuilder
	for _, bit := range unpacked {
		if b, complete := bb.WriteBit(bit); complete {
			packed = append(packed, b)
		}
	}
	return packed
}
