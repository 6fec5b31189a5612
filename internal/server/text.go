package server

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/stego"
)

// EncodeTextHandler godoc
//
// @Summary Hide text in the supplied image
// @Description This endpoint will hide the supplied text in the image, and return the encoded image as PNG. The success response format is dictated by the Accept header, but all errors are returned as JSON
// @Tags text
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeTextRequest true "Body with image to encode and text to hide within the image"
// @Success 200 {object} api.EncodeTextResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/text [post]
func EncodeTextHandler(encodeConfig config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.EncodeTextRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing text encode request")

		err := bindRequest(ctx, &requestBody, func(body []byte) error {
			return decodeEncodeTextRequest(body, &requestBody)
		})
		if err != nil {
			handleBindError(ctx, logger, err)
			return
		}

		imageToEncode, err := stegImage.LoadNRGBA(bytes.NewReader(requestBody.Image))
		if err != nil {
			logger.WithError(err).Error("Error decoding request image")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
			return
		}

		imageEncoder := stegImage.NewImageEncoder(imageToEncode, encodeConfig)
		if err = imageEncoder.EncodeText(requestBody.Message); err != nil {
			handleEncodeError(ctx, logger, err)
			return
		}

		encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.Image))) // pre allocate with size of original, since it should be similar
		if err = imageEncoder.WriteEncodedPNG(encodedImageBuffer); err != nil {
			handleEncodeError(ctx, logger, err)
			return
		}

		logger.With("stats", toHumanizedEncodeStats(imageEncoder.Stats())).Info("Text encoding was successful")

		response := api.EncodeTextResponse{EncodedImage: encodedImageBuffer.Bytes()}
		respond(ctx, response, func() []byte { return encodeTextResponseToFlatBuffer(response) })
	}
}

// DecodeTextHandler godoc
//
// @Summary Decode text hidden in an image
// @Description This endpoint will decode the text previously hidden in the supplied image. The success response format is dictated by the Accept header, but all errors are returned as JSON
// @Tags text
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.DecodeTextRequest true "Body with image to decode"
// @Success 200 {object} api.DecodeTextResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 413 {object} api.Error
// @Router /decode/text [post]
func DecodeTextHandler(ctx *gin.Context) {
	var requestBody api.DecodeTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing text decode request")

	err := bindRequest(ctx, &requestBody, func(body []byte) error {
		return decodeDecodeTextRequest(body, &requestBody)
	})
	if err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	imageToDecode, err := stegImage.LoadNRGBA(bytes.NewReader(requestBody.Image))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageDecoder := stegImage.NewImageDecoder(imageToDecode)
	message, err := imageDecoder.DecodeText()
	if err != nil {
		logger.WithError(err).Info("No hidden message found in image")
		ctx.AbortWithStatusJSON(http.StatusNotFound, errMessageNotFound)
		return
	}

	logger.With("stats", toHumanizedDecodeStats(imageDecoder.Stats())).Info("Text decoding was successful")

	response := api.DecodeTextResponse{Message: message}
	respond(ctx, response, func() []byte { return decodeTextResponseToFlatBuffer(response) })
}

func handleBindError(ctx *gin.Context, logger *logging.Logger, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		logger.WithError(err).Warn("Request body too large")
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errRequestTooLarge)
		return
	}
	logger.WithError(err).Error("Error decoding request body")
	ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
}

func handleEncodeError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error encoding text into image")
	switch {
	case errors.Is(err, stegImage.ErrEmptyMessage):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errEmptyMessage)
	case errors.Is(err, stego.ErrCodePointOutOfRange), errors.Is(err, stego.ErrEmbeddedTerminator):
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, errInvalidMessage)
	case errors.Is(err, stego.ErrCapacityExceeded):
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, errCapacityExceeded)
	default:
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncode)
	}
}
