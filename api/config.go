package api

import (
	"time"

	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'api.rest'.
const namedLogger = "api.rest"

// Config represents the configuration of the api package.
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	Timeout encoding.Duration `long:"timeout"`
	Port    int               `long:"port" description:"Listen for connections on port <port>"`
	IP      string            `long:"ip" description:"Bind to address <ip>"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Timeout: encoding.Duration{Duration: 5 * time.Second},
		IP:      "0.0.0.0",
		Port:    3003,
	}
}
