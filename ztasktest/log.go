package ztasktest

import (
	"bytes"
	"log/slog"
	"testing"
)

// CaptureLogs points the default slog logger at a buffer for the rest of the
// test, debug level included.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}
