package funding

import (
	"time"

	"code.witanprotocol.io/witan/config/encoding"
	"code.witanprotocol.io/witan/logging"
)

const namedLogger = "funding"

// Config represents the configuration of the funding sink. An empty
// endpoint selects the noop sink.
type Config struct {
	Level    encoding.LogLevel `long:"log-level"`
	Endpoint string            `long:"endpoint" description:"Address of the disbursement service issuance orders are posted to"`
	Retries  uint64            `long:"retries" description:"Number of retries for a failed issuance order"`
	Timeout  encoding.Duration `long:"timeout"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Retries: 5,
		Timeout: encoding.Duration{Duration: 10 * time.Second},
	}
}
