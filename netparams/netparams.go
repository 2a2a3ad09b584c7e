package netparams

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"code.witanprotocol.io/witan/events"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types/num"
)

var (
	ErrUnknownKey = errors.New("unknown key")
)

// Broker - event bus
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.witanprotocol.io/witan/netparams Broker
type Broker interface {
	Send(e events.Event)
}

// value is a typed parameter cell. Update mutates it in place after the
// attached rules pass, the To* conversions read it back out.
type value interface {
	Validate(value string) error
	Update(value string) error
	String() string
	ToUint() (uint64, error)
	ToBigUint() (*num.Uint, error)
	ToString() (string, error)
}

// NetParamWatcher is called with the key and new value of a parameter
// once its update is flushed.
type NetParamWatcher func(key, value string)

type WatchParam struct {
	Param   string
	Watcher NetParamWatcher
}

// Store holds the network parameters and notifies watchers when they
// change. Updates are applied immediately but watchers only hear about
// them on the next tick.
type Store struct {
	log    *logging.Logger
	cfg    Config
	store  map[string]value
	mu     sync.RWMutex
	broker Broker

	watchers     map[string][]NetParamWatcher
	paramUpdates map[string]struct{}
}

func New(log *logging.Logger, cfg Config, broker Broker) *Store {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Store{
		log:          log,
		cfg:          cfg,
		store:        defaultNetParams(),
		broker:       broker,
		watchers:     map[string][]NetParamWatcher{},
		paramUpdates: map[string]struct{}{},
	}
}

// UponGenesis overlays the genesis network parameters on the defaults.
func (s *Store) UponGenesis(ctx context.Context, rawState []byte) error {
	s.log.Debug("loading genesis configuration")
	state, err := LoadGenesisState(rawState)
	if err != nil {
		s.log.Error("unable to load genesis state",
			logging.Error(err))
		return err
	}

	// announce the defaults first so event consumers see every key,
	// genesis overrides follow as regular parameter events
	for k, v := range s.store {
		s.broker.Send(events.NewNetworkParameterEvent(ctx, k, v.String()))
	}

	for k, v := range state {
		if err := s.Update(ctx, k, v); err != nil {
			return fmt.Errorf("%v: %v", k, err)
		}
	}

	return nil
}

// Watch registers watchers for the given parameters.
func (s *Store) Watch(wp ...WatchParam) {
	for _, v := range wp {
		s.watchers[v.Param] = append(s.watchers[v.Param], v.Watcher)
	}
}

// OnTick flushes the updates queued since the last tick to their
// watchers, triggered once per ledger height.
func (s *Store) OnTick(_ context.Context, _ uint64) {
	if len(s.paramUpdates) <= 0 {
		return
	}
	for k := range s.paramUpdates {
		val, _ := s.Get(k)
		for _, w := range s.watchers[k] {
			w(k, val)
		}
	}
	s.paramUpdates = map[string]struct{}{}
}

// Validate runs the rules of the parameter against a candidate value
// without storing it.
func (s *Store) Validate(key, value string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.store[key]
	if !ok {
		return ErrUnknownKey
	}
	return v.Validate(value)
}

// Update stores a new value for the key, rejecting values that fail the
// parameter rules. The change is announced on the bus at once and
// queued for the watchers.
func (s *Store) Update(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.store[key]
	if !ok {
		return ErrUnknownKey
	}

	if err := v.Update(value); err != nil {
		return err
	}

	s.paramUpdates[key] = struct{}{}
	s.broker.Send(events.NewNetworkParameterEvent(ctx, key, value))

	return nil
}

// Exists reports whether the key is a known parameter.
func (s *Store) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.store[key]
	return ok
}

// Get returns the current value of the parameter as a string.
func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.store[key]
	if !ok {
		return "", ErrUnknownKey
	}
	return v.String(), nil
}

// GetAll returns the current value of every parameter, keyed by name.
func (s *Store) GetAll() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.store))
	for k, v := range s.store {
		out[k] = v.String()
	}
	return out
}

// GetUint returns the parameter as a uint64.
func (s *Store) GetUint(key string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.store[key]
	if !ok {
		return 0, ErrUnknownKey
	}
	return v.ToUint()
}

// GetBigUint returns the parameter as an arbitrary precision uint.
func (s *Store) GetBigUint(key string) (*num.Uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.store[key]
	if !ok {
		return nil, ErrUnknownKey
	}
	return v.ToBigUint()
}

// GetString returns the parameter as a plain string, erroring when the
// parameter is not string typed.
func (s *Store) GetString(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.store[key]
	if !ok {
		return "", ErrUnknownKey
	}
	return v.ToString()
}
