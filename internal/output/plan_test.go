package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePlan(t *testing.T) {
	entries := []PlanEntry{
		{Name: "test", Skipped: true, Reason: "no test command"},
		{Name: "tag", Description: "tagging build v1.0.0", Commands: []string{"git tag v1.0.0"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, entries))
	require.Equal(t,
		" 1. test           skipped (no test command)\n"+
			" 2. tag            tagging build v1.0.0\n"+
			"      → git tag v1.0.0\n",
		buf.String())
}
