package logging

// FileConfig describes an optional rotated file output for the node
// logs, an empty path disables it.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (f FileConfig) Enabled() bool {
	return f.Path != ""
}

// Config contains the configurable items for this package.
type Config struct {
	Environment string
	File        FileConfig
}

// NewDefaultConfig creates an instance of the package specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Environment: "dev",
		File: FileConfig{
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 28,
		},
	}
}
