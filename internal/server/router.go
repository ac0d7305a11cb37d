package server

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appmiddleware "github.com/roamgen/roamgen/internal/app/middleware"
	"github.com/roamgen/roamgen/internal/pkg/config"
	"github.com/roamgen/roamgen/internal/routes"
)

const sessionName = "roamgen_session"

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create Gin router
	r := gin.New()

	// Setup middleware
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(appmiddleware.OTELGinMiddleware("roamgen"))
	r.Use(gin.Recovery())
	r.Use(appmiddleware.CORSMiddleware())
	r.Use(appmiddleware.SecurityMiddleware())
	r.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(cfg.SessionSecret))))

	// Setup routes
	routes.Setup(r, cfg, logger)

	return r
}

// zapContextFunc returns the Zap context function for logging
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		// Request ID (from header; customize key if needed)
		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		// OTEL trace/span IDs (from context)
		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return fields
	}
}
