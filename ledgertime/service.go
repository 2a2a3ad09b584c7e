package ledgertime

import (
	"context"
	"sync"
	"time"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/metrics"
)

// Broker - event bus
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.witanprotocol.io/witan/ledgertime Broker
type Broker interface {
	Send(e events.Event)
}

// Svc is the ledger height clock. The height is the logical time of
// every governance operation and only ever moves between operations,
// driven by the interval ticker or an explicit restore.
type Svc struct {
	config Config
	log    *logging.Logger

	mu        sync.RWMutex
	height    uint64
	listeners []func(context.Context, uint64)

	broker Broker
}

func New(log *logging.Logger, cfg Config, broker Broker) *Svc {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Svc{
		config: cfg,
		log:    log,
		broker: broker,
	}
}

// ReloadConf reloads the configuration of the height clock. A changed
// tick interval applies from the next Start.
func (s *Svc) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

// Height returns the current ledger height.
func (s *Svc) Height() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.height
}

// Tick advances the ledger height by one and notifies every listener.
func (s *Svc) Tick(ctx context.Context) uint64 {
	s.mu.Lock()
	s.height++
	h := s.height
	listeners := s.listeners
	s.mu.Unlock()

	s.notify(ctx, h, listeners)
	return h
}

// SetHeight moves the clock to the given height, used when restoring
// from a checkpoint.
func (s *Svc) SetHeight(ctx context.Context, height uint64) {
	s.mu.Lock()
	s.height = height
	listeners := s.listeners
	s.mu.Unlock()

	s.notify(ctx, height, listeners)
}

// NotifyOnTick registers a callback invoked on every height change.
// Registration is not synchronized with Start, wire all listeners
// before starting the clock.
func (s *Svc) NotifyOnTick(f func(context.Context, uint64)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, f)
	s.mu.Unlock()
}

func (s *Svc) notify(ctx context.Context, height uint64, listeners []func(context.Context, uint64)) {
	metrics.LedgerHeightSet(height)
	s.broker.Send(events.NewTime(ctx, height))
	for _, f := range listeners {
		f(ctx, height)
	}
	if s.log.GetLevel() <= logging.DebugLevel {
		s.log.Debug("ledger height updated", logging.Uint64("height", height))
	}
}

// Start runs the interval ticker until the context is cancelled.
func (s *Svc) Start(ctx context.Context) {
	s.mu.RLock()
	interval := s.config.TickInterval.Get()
	s.mu.RUnlock()

	s.log.Info("ledger clock started",
		logging.String("tick-interval", interval.String()),
		logging.Uint64("height", s.Height()),
	)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("ledger clock stopped", logging.Uint64("height", s.Height()))
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}
