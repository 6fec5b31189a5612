package model

// Capacity describes how much text an image can hold
type Capacity struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// AvailableBits is the number of LSB slots in the image, three per pixel
	AvailableBits int `json:"available_bits"`
	// MaxMessageLength is the longest message, in characters, that fits once the header and terminator are accounted for
	MaxMessageLength int `json:"max_message_length"`
}

// Fits reports whether a frame needing requiredBits can be stored
func (c Capacity) Fits(requiredBits int) bool {
	return requiredBits <= c.AvailableBits
}
