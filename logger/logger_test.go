package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, log, FromContext(context.Background()))

	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core)
	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Debug("stored")

	assert.Same(t, l, FromContext(ctx))
	assert.Equal(t, 1, logs.FilterMessage("stored").Len())
}

func TestSetGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	assert.Same(t, log, FromGin(c))

	l := zap.NewExample()
	SetGin(c, l)
	assert.Same(t, l, FromGin(c))
	assert.Same(t, l, FromContext(c.Request.Context()))
}

func TestInit(t *testing.T) {
	l, err := Init(Config{Level: "warn", Environment: "production", ServiceName: "test"})
	assert.NoError(t, err)
	t.Cleanup(func() { log = zap.NewNop() })
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}
