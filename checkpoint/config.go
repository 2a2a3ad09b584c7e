package checkpoint

import (
	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

const namedLogger = "checkpoint"

// Config represents the configuration of the checkpoint engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// IntervalHeights is the number of heights between two checkpoints.
	IntervalHeights uint64 `long:"interval-heights"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:           encoding.LogLevel{Level: logging.InfoLevel},
		IntervalHeights: 10,
	}
}
