package fs

import (
	"fmt"
	"os"
)

// EnsureDir creates the directory, and any missing parent, restricted to
// the current user.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil && !os.IsExist(err) {
		return err
	}
	return nil
}

// PathExists reports whether anything lives at the given path.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FileExists reports whether a regular file lives at the given path. It
// fails when the path points to a directory.
func FileExists(path string) (bool, error) {
	stats, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if stats.IsDir() {
		return false, fmt.Errorf("path %q is a directory", path)
	}
	return true, nil
}

// WriteFile writes the file restricted to the current user.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

// ReadFile reads the whole file.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
