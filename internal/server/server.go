package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"net/http"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
	"time"

	_ "textsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	requestIDHeader = "X-Request-ID"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type Options struct {
	Port            string
	EncodeConfig    config.ImageEncodeConfig
	MaxRequestBytes int64
}

// StartServer godoc
// @title textsteg API
// @version 1.0
// @description An API to hide text in images
// @BasePath /api/v1
func StartServer(ctx context.Context, opts Options) error {
	logger := logging.BuildLogger().With("port", opts.Port)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", opts.Port),
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()
	logger.Info("Server started")

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func NewRouter(opts Options) *gin.Engine {
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = config.DefaultMaxRequestBytes
	}

	r := gin.New()
	r.Use(requestID(), gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1", limitRequestBody(opts.MaxRequestBytes))
	v1.POST("/encode/text", EncodeTextHandler(opts.EncodeConfig))
	v1.POST("/decode/text", DecodeTextHandler)
	v1.POST("/capacity", CapacityHandler)

	return r
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		ctx.Set(logging.RequestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

func limitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}

type accessLogEntry struct {
	Timestamp       string        `json:"timestamp"`
	RequestID       string        `json:"request_id,omitempty"`
	StatusCode      int           `json:"status_code"`
	Latency         string        `json:"latency"`
	LatencyRaw      time.Duration `json:"latency_raw"`
	ResponseSize    string        `json:"response_size"`
	ResponseSizeRaw int           `json:"response_size_raw"`
	ClientIP        string        `json:"client_ip"`
	Method          string        `json:"method"`
	Path            string        `json:"path"`
	Error           string        `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	var requestID string
	if id, ok := param.Keys[logging.RequestIDKey].(string); ok {
		requestID = id
	}

	entry, err := json.Marshal(accessLogEntry{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		RequestID:       requestID,
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      param.Latency,
		ResponseSize:    humanize.Bytes(uint64(max(param.BodySize, 0))),
		ResponseSizeRaw: param.BodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
