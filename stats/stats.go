package stats

import (
	"time"

	"code.witanprotocol.io/witan/logging"
)

// Stats groups the runtime counters the node exposes over the API.
type Stats struct {
	log         *logging.Logger
	cfg         Config
	Ledger      *Ledger
	version     string
	versionHash string
	uptime      time.Time
}

// New returns a Stats for a node running the given build.
func New(log *logging.Logger, cfg Config, version string, versionHash string) *Stats {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Stats{
		log:         log,
		cfg:         cfg,
		Ledger:      &Ledger{},
		version:     version,
		versionHash: versionHash,
		uptime:      time.Now(),
	}
}

// ReloadConf updates the internal configuration
func (s *Stats) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.cfg = cfg
}

// GetVersion returns the release version of the running node.
func (s *Stats) GetVersion() string {
	return s.version
}

// GetVersionHash returns the commit the running binary was built from.
func (s *Stats) GetVersionHash() string {
	return s.versionHash
}

// GetUptime returns the time the node came up.
func (s *Stats) GetUptime() time.Time {
	return s.uptime
}

func (s Stats) Height() uint64 {
	return s.Ledger.Height()
}
