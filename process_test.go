package logctx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProcessFields verifies well-formed pairs describing the running process.
func TestProcessFields(t *testing.T) {
	t.Parallel()

	kvs := ProcessFields()
	require.NotEmpty(t, kvs)
	require.Zero(t, len(kvs)%2, "pairs must be even")

	fields := newFrame(kvs)
	require.Equal(t, "pid", fields[0].Key)
	require.Equal(t, os.Getpid(), fields[0].Value)
}
