package paths

import (
	"fmt"
	"path/filepath"

	vgfs "code.witanprotocol.io/witan/libs/fs"

	"github.com/adrg/xdg"
)

// DefaultPaths resolves paths against the XDG Base Directory
// specification, under a "witan" sub-directory of each base home.
type DefaultPaths struct{}

// CreateCachePathFor builds the default path for a cache file and
// creates intermediate directories, if needed.
func (p *DefaultPaths) CreateCachePathFor(relFilePath CachePath) (string, error) {
	fullPath, err := xdg.CacheFile(filepath.Join(witanHome, relFilePath.String()))
	if err != nil {
		return "", fmt.Errorf("couldn't get the default path for %s: %w", relFilePath, err)
	}
	return fullPath, nil
}

// CreateCacheDirFor builds the default path for a cache directory and
// creates it along with intermediate directories, if needed.
func (p *DefaultPaths) CreateCacheDirFor(relDirPath CachePath) (string, error) {
	path := filepath.Join(xdg.CacheHome, witanHome, relDirPath.String())
	if err := vgfs.EnsureDir(path); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", path, err)
	}
	return path, nil
}

// CreateConfigPathFor builds the default path for a configuration file
// and creates intermediate directories, if needed.
func (p *DefaultPaths) CreateConfigPathFor(relFilePath ConfigPath) (string, error) {
	fullPath, err := xdg.ConfigFile(filepath.Join(witanHome, relFilePath.String()))
	if err != nil {
		return "", fmt.Errorf("couldn't get the default path for %s: %w", relFilePath, err)
	}
	return fullPath, nil
}

// CreateConfigDirFor builds the default path for a configuration
// directory and creates it along with intermediate directories, if
// needed.
func (p *DefaultPaths) CreateConfigDirFor(relDirPath ConfigPath) (string, error) {
	path := filepath.Join(xdg.ConfigHome, witanHome, relDirPath.String())
	if err := vgfs.EnsureDir(path); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", path, err)
	}
	return path, nil
}

// CreateDataPathFor builds the default path for a data file and creates
// intermediate directories, if needed.
func (p *DefaultPaths) CreateDataPathFor(relFilePath DataPath) (string, error) {
	fullPath, err := xdg.DataFile(filepath.Join(witanHome, relFilePath.String()))
	if err != nil {
		return "", fmt.Errorf("couldn't get the default path for %s: %w", relFilePath, err)
	}
	return fullPath, nil
}

// CreateDataDirFor builds the default path for a data directory and
// creates it along with intermediate directories, if needed.
func (p *DefaultPaths) CreateDataDirFor(relDirPath DataPath) (string, error) {
	path := filepath.Join(xdg.DataHome, witanHome, relDirPath.String())
	if err := vgfs.EnsureDir(path); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", path, err)
	}
	return path, nil
}

// CreateStatePathFor builds the default path for a state file and
// creates intermediate directories, if needed.
func (p *DefaultPaths) CreateStatePathFor(relFilePath StatePath) (string, error) {
	fullPath, err := xdg.StateFile(filepath.Join(witanHome, relFilePath.String()))
	if err != nil {
		return "", fmt.Errorf("couldn't get the default path for %s: %w", relFilePath, err)
	}
	return fullPath, nil
}

// CreateStateDirFor builds the default path for a state directory and
// creates it along with intermediate directories, if needed.
func (p *DefaultPaths) CreateStateDirFor(relDirPath StatePath) (string, error) {
	path := filepath.Join(xdg.StateHome, witanHome, relDirPath.String())
	if err := vgfs.EnsureDir(path); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", path, err)
	}
	return path, nil
}

// CachePathFor builds the default path for a cache file or directory.
// It doesn't create any resource.
func (p *DefaultPaths) CachePathFor(relPath CachePath) string {
	return filepath.Join(xdg.CacheHome, witanHome, relPath.String())
}

// ConfigPathFor builds the default path for a config file or directory.
// It doesn't create any resource.
func (p *DefaultPaths) ConfigPathFor(relPath ConfigPath) string {
	return filepath.Join(xdg.ConfigHome, witanHome, relPath.String())
}

// DataPathFor builds the default path for a data file or directory. It
// doesn't create any resource.
func (p *DefaultPaths) DataPathFor(relPath DataPath) string {
	return filepath.Join(xdg.DataHome, witanHome, relPath.String())
}

// StatePathFor builds the default path for a state file or directory.
// It doesn't create any resource.
func (p *DefaultPaths) StatePathFor(relPath StatePath) string {
	return filepath.Join(xdg.StateHome, witanHome, relPath.String())
}
