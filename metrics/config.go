package metrics

import (
	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

// Config represents the configuration of the metric package
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	Enabled encoding.Bool     `long:"enabled" choice:"true" choice:"false" description:"Whether or not prometheus metrics are enabled"`
	Port    int               `long:"port" description:"The port to expose prometheus metrics on"`
	Path    string            `long:"path" description:"The path to expose prometheus metrics on"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Enabled: false,
		Port:    2112,
		Path:    "/metrics",
	}
}
