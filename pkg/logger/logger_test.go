package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFallback(t *testing.T) {
	entry := G(context.Background())
	require.NotNil(t, entry)
	assert.Equal(t, L.Logger, entry.Logger)
}

func TestWithLogger(t *testing.T) {
	custom := logrus.New()
	entry := logrus.NewEntry(custom).WithField("component", "skills")

	ctx := WithLogger(context.Background(), entry)
	got := G(ctx)

	assert.Equal(t, custom, got.Logger)
	assert.Equal(t, "skills", got.Data["component"])
}

func TestSetLogLevel(t *testing.T) {
	original := L.Logger.GetLevel()
	defer L.Logger.SetLevel(original)

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("not-a-level"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel(), "level unchanged on parse error")
}

func TestSetLogFormat(t *testing.T) {
	defer SetLogFormat("text")

	SetLogFormat("json")
	_, ok := L.Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	SetLogFormat("text")
	_, ok = L.Logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestLogOutput(t *testing.T) {
	originalOut := L.Logger.Out
	defer SetLogOutput(originalOut)
	buf := &bytes.Buffer{}
	SetLogOutput(buf)

	original := L.Logger.GetLevel()
	defer L.Logger.SetLevel(original)
	require.NoError(t, SetLogLevel("info"))

	G(context.Background()).WithField("count", 3).Info("skills loaded")
	assert.Contains(t, buf.String(), "skills loaded")
	assert.Contains(t, buf.String(), "count=3")
}
