package server

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"io"
	"net/http"
	"textsteg/api"
	"textsteg/api/fb"
)

const (
	MIMEFlatBuffers = "application/octet-stream"
)

var (
	errMalformedFlatBuffer = errors.New("malformed flatbuffer")
)

// bindRequest reads the body as a FlatBuffers table when the request is sent as octet-stream, and as JSON otherwise
func bindRequest(ctx *gin.Context, jsonTarget any, fbDecode func(body []byte) error) error {
	if ctx.ContentType() != MIMEFlatBuffers {
		return ctx.ShouldBindJSON(jsonTarget)
	}

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return err
	}
	return fbDecode(body)
}

// respond writes a FlatBuffers table when the client only accepts octet-stream, and JSON otherwise
func respond(ctx *gin.Context, jsonBody any, fbEncode func() []byte) {
	switch ctx.NegotiateFormat(gin.MIMEJSON, MIMEFlatBuffers) {
	case MIMEFlatBuffers:
		ctx.Data(http.StatusOK, MIMEFlatBuffers, fbEncode())
	default:
		ctx.JSON(http.StatusOK, jsonBody)
	}
}

// readFlatBuffer turns the panics raised by out of range offsets in a malformed buffer into an error
func readFlatBuffer(body []byte, read func()) (err error) {
	if len(body) < flatbuffers.SizeUOffsetT {
		return errMalformedFlatBuffer
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errMalformedFlatBuffer, r)
		}
	}()
	read()
	return nil
}

func decodeEncodeTextRequest(body []byte, request *api.EncodeTextRequest) error {
	return readFlatBuffer(body, func() {
		fbRequest := fb.GetRootAsEncodeTextRequest(body, 0)
		request.Image = fbRequest.ImageBytes()
		request.Message = string(fbRequest.Message())
	})
}

func decodeDecodeTextRequest(body []byte, request *api.DecodeTextRequest) error {
	return readFlatBuffer(body, func() {
		request.Image = fb.GetRootAsDecodeTextRequest(body, 0).ImageBytes()
	})
}

func EncodeTextRequestToFlatBuffer(request api.EncodeTextRequest) []byte {
	builder := flatbuffers.NewBuilder(len(request.Image) + len(request.Message) + 64)
	imageOffset := builder.CreateByteVector(request.Image)
	messageOffset := builder.CreateString(request.Message)

	fb.EncodeTextRequestStart(builder)
	fb.EncodeTextRequestAddImage(builder, imageOffset)
	fb.EncodeTextRequestAddMessage(builder, messageOffset)
	builder.Finish(fb.EncodeTextRequestEnd(builder))
	return builder.FinishedBytes()
}

func DecodeTextRequestToFlatBuffer(request api.DecodeTextRequest) []byte {
	builder := flatbuffers.NewBuilder(len(request.Image) + 64)
	imageOffset := builder.CreateByteVector(request.Image)

	fb.DecodeTextRequestStart(builder)
	fb.DecodeTextRequestAddImage(builder, imageOffset)
	builder.Finish(fb.DecodeTextRequestEnd(builder))
	return builder.FinishedBytes()
}

func encodeTextResponseToFlatBuffer(response api.EncodeTextResponse) []byte {
	builder := flatbuffers.NewBuilder(len(response.EncodedImage) + 64)
	encodedImageOffset := builder.CreateByteVector(response.EncodedImage)

	fb.EncodeTextResponseStart(builder)
	fb.EncodeTextResponseAddEncodedImage(builder, encodedImageOffset)
	builder.Finish(fb.EncodeTextResponseEnd(builder))
	return builder.FinishedBytes()
}

func decodeTextResponseToFlatBuffer(response api.DecodeTextResponse) []byte {
	builder := flatbuffers.NewBuilder(len(response.Message) + 64)
	messageOffset := builder.CreateString(response.Message)

	fb.DecodeTextResponseStart(builder)
	fb.DecodeTextResponseAddMessage(builder, messageOffset)
	builder.Finish(fb.DecodeTextResponseEnd(builder))
	return builder.FinishedBytes()
}
