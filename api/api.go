package api

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strategyalign/internal/app"
	"strategyalign/internal/domain"
	"strategyalign/internal/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	AlignmentApp   app.AlignmentApp
	AllowedOrigins []string
	MaxUploadBytes int64
	Metrics        *Metrics
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	if m.Metrics == nil {
		m.Metrics = NewMetrics()
	}
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(m.AllowedOrigins) == 0 || slices.Contains(m.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = m.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddleware)

	if m.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = m.MaxUploadBytes
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to strategy align"})
	})
	router.POST("/analyze", m.analyze)
	router.POST("/analyze/export", m.export)
	router.POST("/commentary", m.commentary)
	router.GET("/metrics", m.Metrics.Handler())

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// bad input is the caller's fault, everything else is ours
func errorStatus(err error) int {
	var bindErr requestError
	if domain.IsInputError(err) || errors.As(err, &bindErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// requestError marks a malformed request body or query
type requestError struct {
	err error
}

func (e requestError) Error() string {
	return e.err.Error()
}

func (e requestError) Unwrap() error {
	return e.err
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err.Error(), "status", code)
	} else {
		log.Infow("request rejected", "error", err.Error(), "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	log := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID.String(),
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))

	start := time.Now().UTC()
	c.Next()

	elapsed := time.Since(start)
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	m.Metrics.ObserveRequest(route, c.Writer.Status(), elapsed.Seconds())
	log.Infow(
		"request complete",
		"method", c.Request.Method,
		"status", c.Writer.Status(),
		"durationMs", elapsed.Milliseconds(),
		"ip", c.ClientIP(),
	)
}
