package serlog_test

import (
	"bytes"
	"testing"

	"github.com/okvist/serlog"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	serlog.SetOutput(buf)
	t.Cleanup(func() { serlog.SetOutput(nil) })
	return buf
}
