package accounts

import (
	"context"
	"sync"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types/num"

	"github.com/pkg/errors"
)

var (
	// ErrNoBalanceForParty signals that the party holds no account at all.
	ErrNoBalanceForParty = errors.New("no balance for party")
	// ErrInvalidBalance signals a balance that does not parse as an unsigned integer.
	ErrInvalidBalance = errors.New("invalid account balance")
)

// Svc holds the balance of every known party. Balances are seeded from the
// genesis allocations and read by the vote ledger when weighing votes.
type Svc struct {
	Config
	log *logging.Logger

	mu       sync.RWMutex
	balances map[string]*num.Uint
}

// NewService creates the accounts service
func NewService(log *logging.Logger, cfg Config) *Svc {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Svc{
		Config:   cfg,
		log:      log,
		balances: map[string]*num.Uint{},
	}
}

// ReloadConf update the internal configuration of the service
func (s *Svc) ReloadConf(cfg Config) {
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

// UponGenesis seeds the party balances from the genesis allocations.
func (s *Svc) UponGenesis(ctx context.Context, rawState []byte) error {
	s.log.Debug("loading genesis configuration")
	state, err := LoadGenesisState(rawState)
	if err != nil {
		s.log.Error("unable to load genesis state",
			logging.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for party, balance := range state {
		b, overflow := num.UintFromString(balance, 10)
		if overflow {
			return errors.Wrapf(ErrInvalidBalance, "party %s balance %s", party, balance)
		}
		s.balances[party] = b
	}
	s.log.Info("account balances loaded",
		logging.Int("count", len(state)))

	return nil
}

// GetAvailableBalance returns the balance the party can commit to a vote,
// or ErrNoBalanceForParty when the party holds no account.
func (s *Svc) GetAvailableBalance(ctx context.Context, party string) (*num.Uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	balance, ok := s.balances[party]
	if !ok {
		return nil, ErrNoBalanceForParty
	}
	return balance.Clone(), nil
}

// SetBalance credits a party with the given balance, replacing any
// previous one.
func (s *Svc) SetBalance(party string, balance *num.Uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[party] = balance.Clone()
}
