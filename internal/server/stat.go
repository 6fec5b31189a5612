package server

import (
	"github.com/dustin/go-humanize"
	"textsteg/pkg/model"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	BitsWrittenHuman         string `json:"bits_written_human"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	BitsReadHuman     string `json:"bits_read_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:              encodeStats,
		DataEncodingHuman:        encodeStats.DataEncoding.String(),
		OutputImageEncodingHuman: encodeStats.OutputImageEncoding.String(),
		BitsWrittenHuman:         humanize.Comma(int64(encodeStats.BitsWritten)),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
		BitsReadHuman:     humanize.Comma(int64(decodeStats.BitsRead)),
	}
}
