package ledgertime

import (
	"time"

	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

const namedLogger = "ledgertime"

// Config represents the configuration of the ledger height clock
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// TickInterval is the wall clock time between two heights
	TickInterval encoding.Duration `long:"tick-interval"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:        encoding.LogLevel{Level: logging.InfoLevel},
		TickInterval: encoding.Duration{Duration: 10 * time.Minute},
	}
}
