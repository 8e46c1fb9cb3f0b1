package pidfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/pidfile"
)

func TestAcquireAndRelease(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "dashboard.pid")
	pf := pidfile.New(path)

	// Act
	require.NoError(t, pf.Acquire())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))

	require.NoError(t, pf.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, pf.Release(), "releasing twice is harmless")
}

func TestAcquire_ReplacesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid\n"), 0o644))

	require.NoError(t, pidfile.New(path).Acquire())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}

func TestAcquire_LiveProcessBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.pid")
	// PID 1 always exists on unix hosts
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0o644))

	err := pidfile.New(path).Acquire()

	var running *pidfile.AlreadyRunningError
	require.ErrorAs(t, err, &running)
	assert.Equal(t, 1, running.PID)
}
