package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := Wrap(zap.New(core)).With(zap.String("request_id", "abc"))

	l.Debug("dropped")
	l.Info("listed categories", zap.Int("count", 2))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "listed categories", entries[0].Message)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "abc", ctx["request_id"])
		assert.EqualValues(t, 2, ctx["count"])
	}
}

func TestNewZapLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{Level: "loud", Encoding: "json", DisableCaller: true, DisableStacktrace: true})
	assert.NotNil(t, l)
	l.Info("ok")
}
