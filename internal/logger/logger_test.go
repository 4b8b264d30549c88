package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitAndAccessors(t *testing.T) {
	Init("development")
	assert.NotNil(t, L())

	Init("production")
	assert.NotNil(t, L())

	Sync()
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))

	assert.NotNil(t, FromCtx(ctx))
	assert.NotNil(t, FromCtx(context.Background()))
}
