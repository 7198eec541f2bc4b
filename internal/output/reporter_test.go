package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporter_Silent(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, WithColor(false))

	r.Header("Tests")
	r.Start("running tests with npm test")
	r.OK("running tests with npm test")

	require.Equal(t, "running tests with npm test... OK\n", buf.String())
}

func TestReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, WithColor(false))

	r.Header("Tests")
	r.Start("running tests with npm test")
	r.OK("running tests with npm test")

	require.Equal(t, "\nTests\nrunning tests with npm test...\nOK running tests with npm test\n", buf.String())
}

func TestReporter_FailAndWarn(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, WithColor(false))

	r.Start("tagging build v1.0.0")
	r.Fail(errors.New("git tag v1.0.0 exited with status 128"))
	r.Warn("%d uncommitted changes", 2)

	require.Equal(t,
		"tagging build v1.0.0... FAILED git tag v1.0.0 exited with status 128\nWARN 2 uncommitted changes\n",
		buf.String())
}

func TestReporter_Output(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, WithColor(false))

	r.Output("")
	r.Output("no newline")
	r.Output("with newline\n")

	require.Equal(t, "no newline\nwith newline\n", buf.String())
}

func TestReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, WithColor(true))

	r.OK("x")
	require.Contains(t, buf.String(), "\x1b[32m")
}
