package funding

import (
	"context"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types/num"
)

// NoopSink accepts every issuance order without doing anything, standing in
// for a disbursement service in development setups.
type NoopSink struct {
	Config
	log *logging.Logger
}

// NewNoopSink creates the noop sink.
func NewNoopSink(log *logging.Logger, cfg Config) *NoopSink {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &NoopSink{
		Config: cfg,
		log:    log,
	}
}

// ReloadConf update the internal configuration of the sink
func (s *NoopSink) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.Config = cfg
}

// Issue accepts the order unconditionally.
func (s *NoopSink) Issue(ctx context.Context, fundingRef uint64, rate num.Decimal, termHeights uint64) error {
	s.log.Info("issuance order accepted",
		logging.Uint64("funding-ref", fundingRef),
		logging.String("rate", rate.String()),
		logging.Uint64("term-heights", termHeights),
	)
	return nil
}
