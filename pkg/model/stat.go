package model

import (
	"time"
)

// EncodeStats records how long each stage of hiding a message took, and how much of the image it used
type EncodeStats struct {
	Setup               time.Duration `json:"setup"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	BitsWritten         int           `json:"bits_written"`
	PixelsTouched       int           `json:"pixels_touched"`
}

type DecodeStats struct {
	DataDecoding time.Duration `json:"data_decoding"`
	BitsRead     int           `json:"bits_read"`
}
