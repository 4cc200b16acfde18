package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"emailgenie/internal/app"
	"emailgenie/internal/domain"
	"emailgenie/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApiHandler serves the three screens over JSON. It holds the single
// in-process session.
type ApiHandler struct {
	SessionApp app.SessionApp
	Session    *domain.Session
	Logger     *zap.SugaredLogger
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to EmailGenie"})
	})

	router.GET("/session", m.getSession)
	router.POST("/session/tab", m.navigate)

	router.GET("/profiles", m.listProfiles)
	router.POST("/profiles", m.saveProfile)
	router.DELETE("/profiles/*name", m.deleteProfile)

	router.POST("/generate", m.generate)

	router.PUT("/preview", m.updatePreview)
	router.POST("/preview/send", m.sendPreview)

	router.GET("/templates", m.listTemplates)
	router.POST("/templates", m.saveTemplate)
	router.GET("/sentEmails", m.listSentEmails)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	m.Logger.Infow("starting api", "port", port)
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson responds 400 for validation errors and 500 for
// everything else.
func returnErrorJson(err error, c *gin.Context) {
	code := http.StatusInternalServerError
	if errors.Is(err, domain.ErrValidation) {
		code = http.StatusBadRequest
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err)
	} else {
		log.Infow("request rejected", "error", err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	log := m.Logger.With("requestID", requestID.String())

	trace, endTrace := domain.NewTrace()
	ctx := logger.WithContext(c.Request.Context(), log)
	ctx = domain.ContextWithTrace(ctx, trace)
	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Request-ID", requestID.String())

	start := time.Now().UTC()

	c.Next()

	endTrace()
	if len(trace.Spans) > 0 {
		trace.Spans[len(trace.Spans)-1].End()
	}

	fields := []interface{}{
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	}
	if len(trace.Spans) > 0 {
		traceJson, err := trace.ToJsonBytes()
		if err != nil {
			log.Warnw("failed to marshal trace", "error", err)
		} else {
			fields = append(fields, "trace", string(traceJson))
		}
	}
	log.Infow("handled request", fields...)
}
