package image

import (
	"fmt"
	"math/rand"
	"testing"
)

const testImageSize = 300

type testFunc func(t *testing.T, messageLength int, randomizePixelOpaqueness bool)

func runImageTestsWithMessageLengthsAndOpaquenessSettings(t *testing.T, testFunc testFunc) {
	for _, messageLength := range []int{1, 64, 1000, maxMessageLengthForTestImage()} {
		messageLengthCopy := messageLength
		t.Run(fmt.Sprintf("MessageLength-%d", messageLength), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, messageLengthCopy, false)
			})
			t.Run("non-opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, messageLengthCopy, true)
			})
		})
	}
}

func maxMessageLengthForTestImage() int {
	return (testImageSize*testImageSize*3)/8 - 6
}

// generateMessage returns text that survives a round trip, code points 1-255
func generateMessage(length int) string {
	runes := make([]rune, length)
	for i := range runes {
		runes[i] = rune(rand.Intn(255) + 1)
	}
	return string(runes)
}
