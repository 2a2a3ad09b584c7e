package test

import (
	"io/fs"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertDirAccess checks the directory exists with owner-only access.
func AssertDirAccess(t *testing.T, dirPath string) {
	t.Helper()
	stats, err := os.Stat(dirPath)
	require.NoError(t, err)
	assert.True(t, stats.IsDir())
	assertPerm(t, stats.Mode().Perm(), 0700, 0777)
}

// AssertFileAccess checks the file exists with owner-only access.
func AssertFileAccess(t *testing.T, filePath string) {
	t.Helper()
	stats, err := os.Stat(filePath)
	require.NoError(t, err)
	assertPerm(t, stats.Mode().Perm(), 0600, 0666)
}

// Windows has no unix permission bits, os.Stat reports everything as
// world accessible there.
func assertPerm(t *testing.T, got, want, windowsWant fs.FileMode) {
	t.Helper()
	if runtime.GOOS == "windows" {
		want = windowsWant
	}
	assert.Equal(t, want, got)
}
