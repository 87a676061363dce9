package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(verbose bool) (*ConsoleLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewConsoleLogger(verbose)
	l.out = &buf
	return l, &buf
}

func TestConsoleLogger_Info(t *testing.T) {
	l, buf := capture(false)
	l.Info("generated %s", "pkg.deb.metadata.json")
	assert.Equal(t, "generated pkg.deb.metadata.json\n", buf.String())
}

func TestConsoleLogger_VerboseDisabled(t *testing.T) {
	l, buf := capture(false)
	l.Verbose("should not appear")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	l, buf := capture(true)
	l.Verbose("details")
	assert.Equal(t, "[VERBOSE] details\n", buf.String())
}

func TestConsoleLogger_Error(t *testing.T) {
	l, buf := capture(false)
	l.Error("boom: %d", 42)
	assert.Equal(t, "[ERROR] boom: 42\n", buf.String())
}

func TestConsoleLogger_NoArgsWithPercent(t *testing.T) {
	// Messages without args must not be reinterpreted as format strings.
	l, buf := capture(false)
	l.Info("100% done")
	assert.Equal(t, "100% done\n", buf.String())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Verbose("x")
	l.Info("x")
	l.Error("x")
}
