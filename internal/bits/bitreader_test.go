package bits

import (
	"bytes"
	"testing"
)

func TestReadBit(t *testing.T) {
	// 10000000 00000111
	br := NewBitReader([]byte{128, 7})
	expectedBits := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1}

	for iter, expectedBit := range expectedBits {
		if bitsLeft := br.BitsLeftToRead(); bitsLeft != len(expectedBits)-iter {
			t.Fatalf("Expected %d bits left on iter %d, got %d", len(expectedBits)-iter, iter+1, bitsLeft)
		}
		if bit := br.ReadBit(); bit != expectedBit {
			t.Errorf("Failure reading bit on iter %d, result was: %d, expected %d", iter+1, bit, expectedBit)
		}
	}
	if br.BitsLeftToRead() != 0 || br.ReadBit() != 0 {
		t.Errorf("Expected exhausted reader to return 0 bits")
	}
}

func TestPackUnpack(t *testing.T) {
	unpacked := Unpack([]byte{'S', 0})
	expected := []byte{0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(unpacked, expected) {
		t.Fatalf("Unexpected unpacked bits %v", unpacked)
	}

	packed := Pack(append(unpacked, 1, 1, 1))
	if !bytes.Equal(packed, []byte{'S', 0}) {
		t.Errorf("Expected trailing partial byte to be dropped, got %v", packed)
	}
}

func TestByteBuilder(t *testing.T) {
	var bb ByteBuilder
	for i := 0; i < 7; i++ {
		if _, complete := bb.WriteBit(1); complete {
			t.Fatalf("Byte completed after %d bits", i+1)
		}
	}
	b, complete := bb.WriteBit(0)
	if !complete || b != 0xFE {
		t.Errorf("Expected completed byte 0xFE, got %#x complete=%t", b, complete)
	}
	if _, complete = bb.WriteBit(1); complete {
		t.Errorf("Expected builder to start over on a fresh byte")
	}
}
