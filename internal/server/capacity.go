package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	stegImage "textsteg/pkg/image"
)

// CapacityHandler godoc
//
// @Summary Report the text capacity of an image
// @Description Reports how many LSBs the supplied image offers and the longest message it can hold
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityRequest true "Body with the image to inspect"
// @Success 200 {object} api.CapacityResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Router /capacity [post]
func CapacityHandler(ctx *gin.Context) {
	var requestBody api.CapacityRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	img, err := stegImage.LoadNRGBA(bytes.NewReader(requestBody.Image))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	capacity := stegImage.CapacityOf(img)
	ctx.JSON(http.StatusOK, api.CapacityResponse{
		Width:            capacity.Width,
		Height:           capacity.Height,
		AvailableBits:    capacity.AvailableBits,
		MaxMessageLength: capacity.MaxMessageLength,
	})
}
