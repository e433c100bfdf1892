package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level       string
	Environment string
	ServiceName string
}

var log = zap.NewNop()

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init builds the process logger: JSON in production, console otherwise.
func Init(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Environment == "production" {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	l, err := zc.Build(zap.Fields(
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
	))
	if err != nil {
		return nil, err
	}
	log = l
	zap.ReplaceGlobals(l)
	return l, nil
}

type contextKey string

const (
	loggerKey  contextKey = "logger"
	ginLogger             = "logger"
)

func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored by WithContext, or the process
// logger when there is none.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return log
}

// SetGin stores the request-scoped logger on a gin context.
func SetGin(c *gin.Context, l *zap.Logger) {
	c.Set(ginLogger, l)
	c.Request = c.Request.WithContext(WithContext(c.Request.Context(), l))
}

func FromGin(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ginLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return log
}
