package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithField_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	base := L.(*logger)

	same := base.WithField("query", "page=1").(*logger)
	assert.Same(t, base, same)

	kept := base.WithField("user_id", "u-1").(*logger)
	assert.Equal(t, "u-1", kept.entry.Data["user_id"])

	filtered := base.WithFields(Fields{"method": "GET", "referer": "x"}).(*logger)
	assert.Equal(t, "GET", filtered.entry.Data["method"])
	assert.NotContains(t, filtered.entry.Data, "referer")
}

func TestWithField_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	l := L.WithFields(Fields{"referer": "x"}).(*logger)
	assert.Equal(t, "x", l.entry.Data["referer"])
}
