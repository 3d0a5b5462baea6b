package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobform/pkg/logger"
)

type field string

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestFields(t *testing.T) {
	attr := logger.Fields(field("email"), field("phone"))
	assert.Equal(t, "fields", attr.Key)
	assert.Equal(t, []string{"email", "phone"}, attr.Value.Any())

	assert.Equal(t, []string{}, logger.Fields[field]().Value.Any())
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "Designer", logger.Position(field("Designer")).Value.String())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "controller", logger.Component("controller").Value.String())
	assert.Equal(t, "submit", logger.Event("submit").Value.String())
}
