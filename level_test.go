package serlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okvist/serlog"
)

func TestLevelOrdering(t *testing.T) {
	assert.True(t, serlog.NONE < serlog.FATAL)
	assert.True(t, serlog.FATAL < serlog.ERROR)
	assert.True(t, serlog.ERROR < serlog.WARNING)
	assert.True(t, serlog.WARNING < serlog.INFO)
	assert.True(t, serlog.INFO < serlog.DEBUG)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "NONE", serlog.NONE.String())
	assert.Equal(t, "WARNING", serlog.WARNING.String())
	assert.Equal(t, "DEBUG", serlog.DEBUG.String())
	assert.Equal(t, "Level(42)", serlog.Level(42).String())
	assert.Equal(t, "Level(-1)", serlog.Level(-1).String())
}

func TestParseLevel(t *testing.T) {
	l, err := serlog.ParseLevel("INFO")
	assert.NoError(t, err)
	assert.Equal(t, serlog.INFO, l)

	l, err = serlog.ParseLevel("warning")
	assert.NoError(t, err)
	assert.Equal(t, serlog.WARNING, l)

	l, err = serlog.ParseLevel(" none ")
	assert.NoError(t, err)
	assert.Equal(t, serlog.NONE, l)

	_, err = serlog.ParseLevel("VERBOSE")
	assert.Error(t, err)
}

func TestParseLevelRoundTrip(t *testing.T) {
	for l := serlog.NONE; l <= serlog.DEBUG; l++ {
		parsed, err := serlog.ParseLevel(l.String())
		assert.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}
