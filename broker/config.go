package broker

import (
	"time"

	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

const namedLogger = "broker"

// Config represents the configuration of the broker.
type Config struct {
	Level  encoding.LogLevel `long:"log-level"`
	Socket SocketConfig      `group:"Socket" namespace:"socket"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
		Socket: SocketConfig{
			Enabled:       false,
			IP:            "0.0.0.0",
			Port:          3005,
			TransportType: "tcp",
			SendTimeout:   encoding.Duration{Duration: 100 * time.Millisecond},
			BufferSize:    1024,
		},
	}
}

type SocketConfig struct {
	Enabled       encoding.Bool     `long:"enabled" description:"set to true to stream events over the event socket"`
	IP            string            `long:"ip" description:" "`
	Port          int               `long:"port" description:" "`
	TransportType string            `long:"transport-type"`
	SendTimeout   encoding.Duration `long:"send-timeout"`
	BufferSize    int               `long:"buffer-size"`
}
