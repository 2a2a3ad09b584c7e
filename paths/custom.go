package paths

import (
	"fmt"
	"path/filepath"

	vgfs "code.witanprotocol.io/witan/libs/fs"
)

// CustomPaths mimics the default paths layout under a custom root
// directory. The cache, config, data and state homes become
// sub-directories of that root.
type CustomPaths struct {
	CustomHome string
}

// CreateCachePathFor builds the path for a cache file under the custom
// home and creates intermediate directories, if needed.
func (p *CustomPaths) CreateCachePathFor(relFilePath CachePath) (string, error) {
	fullPath := p.CachePathFor(relFilePath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateCacheDirFor builds the path for a cache directory under the
// custom home and creates it along with intermediate directories, if
// needed.
func (p *CustomPaths) CreateCacheDirFor(relDirPath CachePath) (string, error) {
	fullPath := p.CachePathFor(relDirPath)
	if err := vgfs.EnsureDir(fullPath); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateConfigPathFor builds the path for a configuration file under
// the custom home and creates intermediate directories, if needed.
func (p *CustomPaths) CreateConfigPathFor(relFilePath ConfigPath) (string, error) {
	fullPath := p.ConfigPathFor(relFilePath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateConfigDirFor builds the path for a configuration directory
// under the custom home and creates it along with intermediate
// directories, if needed.
func (p *CustomPaths) CreateConfigDirFor(relDirPath ConfigPath) (string, error) {
	fullPath := p.ConfigPathFor(relDirPath)
	if err := vgfs.EnsureDir(fullPath); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateDataPathFor builds the path for a data file under the custom
// home and creates intermediate directories, if needed.
func (p *CustomPaths) CreateDataPathFor(relFilePath DataPath) (string, error) {
	fullPath := p.DataPathFor(relFilePath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateDataDirFor builds the path for a data directory under the
// custom home and creates it along with intermediate directories, if
// needed.
func (p *CustomPaths) CreateDataDirFor(relDirPath DataPath) (string, error) {
	fullPath := p.DataPathFor(relDirPath)
	if err := vgfs.EnsureDir(fullPath); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateStatePathFor builds the path for a state file under the custom
// home and creates intermediate directories, if needed.
func (p *CustomPaths) CreateStatePathFor(relFilePath StatePath) (string, error) {
	fullPath := p.StatePathFor(relFilePath)
	if err := vgfs.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CreateStateDirFor builds the path for a state directory under the
// custom home and creates it along with intermediate directories, if
// needed.
func (p *CustomPaths) CreateStateDirFor(relDirPath StatePath) (string, error) {
	fullPath := p.StatePathFor(relDirPath)
	if err := vgfs.EnsureDir(fullPath); err != nil {
		return "", fmt.Errorf("couldn't create directories for %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CachePathFor builds the path for a cache file or directory under the
// custom home. It doesn't create any resource.
func (p *CustomPaths) CachePathFor(relPath CachePath) string {
	return filepath.Join(p.CustomHome, "cache", relPath.String())
}

// ConfigPathFor builds the path for a config file or directory under
// the custom home. It doesn't create any resource.
func (p *CustomPaths) ConfigPathFor(relPath ConfigPath) string {
	return filepath.Join(p.CustomHome, "config", relPath.String())
}

// DataPathFor builds the path for a data file or directory under the
// custom home. It doesn't create any resource.
func (p *CustomPaths) DataPathFor(relPath DataPath) string {
	return filepath.Join(p.CustomHome, "data", relPath.String())
}

// StatePathFor builds the path for a state file or directory under the
// custom home. It doesn't create any resource.
func (p *CustomPaths) StatePathFor(relPath StatePath) string {
	return filepath.Join(p.CustomHome, "state", relPath.String())
}
