package accounts

import (
	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

const namedLogger = "accounts"

// Config represents the configuration of the accounts service
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
