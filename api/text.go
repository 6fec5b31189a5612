package api

type EncodeTextRequest struct {
	// PNG (or any other supported format) to hide the message in
	Image   []byte `json:"image" binding:"required"`
	Message string `json:"message"`
}

type EncodeTextResponse struct {
	// Lossless PNG holding the message
	EncodedImage []byte `json:"encoded_image"`
}

type DecodeTextRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type DecodeTextResponse struct {
	Message string `json:"message"`
}

type CapacityRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type CapacityResponse struct {
	Width            int `json:"width"`
	Height           int `json:"height"`
	AvailableBits    int `json:"available_bits"`
	MaxMessageLength int `json:"max_message_length"`
}
