//go:build serlog_fatal && !serlog_none

// Run with: go test -tags serlog_fatal

package serlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okvist/serlog"
)

type uartModule struct{}

func (uartModule) Threshold() serlog.Level { return serlog.INFO }

func TestQuietBuildSuppressesVerboseSeverities(t *testing.T) {
	buf := capture(t)

	serlog.Errorf("dropped")
	serlog.Warningf("dropped")
	serlog.Infof("dropped")
	serlog.Debugf("dropped")
	serlog.Logf[serlog.Error]("dropped")
	serlog.Logf[serlog.Info]("dropped")
	serlog.Logf[serlog.Debug]("dropped")

	assert.Empty(t, buf.String())
}

func TestQuietBuildKeepsThresholdSeverity(t *testing.T) {
	buf := capture(t)

	serlog.Fatalf("kept %d", 1)
	serlog.Logf[serlog.Fatal]("kept %d", 2)

	out := buf.String()
	assert.Contains(t, out, "kept 1")
	assert.Contains(t, out, "kept 2")
}

func TestModuleOverrideIgnoresQuietBuild(t *testing.T) {
	buf := capture(t)

	serlog.Modf[uartModule, serlog.Info]("still here")

	assert.Contains(t, buf.String(), "still here")
}
