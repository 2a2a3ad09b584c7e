package config

import (
	"fmt"
	"os"

	vgfs "code.witanprotocol.io/witan/libs/fs"
	"code.witanprotocol.io/witan/paths"
)

// Loader reads and writes the node configuration file at its
// canonical location.
type Loader struct {
	configFilePath string
}

// InitialiseLoader builds a Loader for the node configuration file,
// creating intermediate directories if needed.
func InitialiseLoader(witanPaths paths.Paths) (*Loader, error) {
	configFilePath, err := witanPaths.CreateConfigPathFor(paths.NodeDefaultConfigFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't get path for %s: %w", paths.NodeDefaultConfigFile, err)
	}

	return &Loader{
		configFilePath: configFilePath,
	}, nil
}

func (l *Loader) ConfigFilePath() string {
	return l.configFilePath
}

func (l *Loader) ConfigExists() (bool, error) {
	exists, err := vgfs.FileExists(l.configFilePath)
	if err != nil {
		return false, fmt.Errorf("couldn't verify file presence: %w", err)
	}
	return exists, nil
}

func (l *Loader) Get() (*Config, error) {
	cfg := NewDefaultConfig()
	if err := paths.ReadStructuredFile(l.configFilePath, &cfg); err != nil {
		return nil, fmt.Errorf("couldn't read file at %s: %w", l.configFilePath, err)
	}
	return &cfg, nil
}

func (l *Loader) Save(cfg *Config) error {
	if err := paths.WriteStructuredFile(l.configFilePath, cfg); err != nil {
		return fmt.Errorf("couldn't write file at %s: %w", l.configFilePath, err)
	}
	return nil
}

func (l *Loader) Remove() {
	_ = os.RemoveAll(l.configFilePath)
}

// EnsureNodeConfig returns the loader and the current configuration,
// erroring out if the node has not been initialised yet.
func EnsureNodeConfig(witanPaths paths.Paths) (*Loader, *Config, error) {
	cfgLoader, err := InitialiseLoader(witanPaths)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't initialise configuration loader: %w", err)
	}

	configExists, err := cfgLoader.ConfigExists()
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't verify configuration presence: %w", err)
	}
	if !configExists {
		return nil, nil, fmt.Errorf("node has not been initialised, please run `%s init`", os.Args[0])
	}

	cfg, err := cfgLoader.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't get configuration: %w", err)
	}

	return cfgLoader, cfg, nil
}
