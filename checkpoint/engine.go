package checkpoint

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	vgcrypto "code.witanprotocol.io/witan/libs/crypto"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/types"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownCheckpointName      = errors.New("component for checkpoint not registered")
	ErrComponentWithDuplicateName = errors.New("multiple components with the same name")
	ErrCheckpointHashIncorrect    = errors.New("checkpoint hash does not match its state")

	// cpOrder fixes the restore order. Parameters come first so quorum
	// and duration are in place, the clock next so heights are correct
	// when the registry replays its state.
	cpOrder = []string{
		"netparams",
		"ledgertime",
		"governance",
	}
)

// State is a component whose state is captured in checkpoints.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/state_mock.go -package mocks code.witanprotocol.io/witan/checkpoint State
type State interface {
	Name() string
	Checkpoint() ([]byte, error)
	Load(ctx context.Context, data []byte) error
}

// Engine assembles, hashes and restores checkpoints of the registered
// components.
type Engine struct {
	log *logging.Logger

	mu         sync.Mutex
	cfg        Config
	components map[string]State
	nextCP     uint64
}

func New(log *logging.Logger, cfg Config, components ...State) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	e := &Engine{
		log:        log,
		cfg:        cfg,
		components: make(map[string]State, len(components)),
	}
	for _, c := range components {
		if err := e.addComponent(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ReloadConf reloads the configuration. A change of the checkpoint
// interval moves the next scheduled checkpoint accordingly.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.mu.Lock()
	if e.nextCP != 0 && cfg.IntervalHeights != e.cfg.IntervalHeights {
		e.nextCP = e.nextCP - e.cfg.IntervalHeights + cfg.IntervalHeights
	}
	e.cfg = cfg
	e.mu.Unlock()
}

// Add registers components after the engine has been instantiated.
func (e *Engine) Add(comps ...State) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range comps {
		if err := e.addComponent(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) addComponent(comp State) error {
	name := comp.Name()
	c, ok := e.components[name]
	if !ok {
		e.components[name] = comp
		return nil
	}
	if c != comp {
		return ErrComponentWithDuplicateName
	}
	// component was registered already
	return nil
}

// Checkpoint returns a checkpoint of all components when one is due at
// the given height, nil otherwise. The first call only schedules.
func (e *Engine) Checkpoint(height uint64) (*types.Checkpoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.nextCP == 0 {
		e.nextCP = height + e.cfg.IntervalHeights
		return nil, nil
	}
	if height < e.nextCP {
		return nil, nil
	}
	e.nextCP = height + e.cfg.IntervalHeights
	return e.makeCheckpoint(height)
}

// Make returns an immediate checkpoint at the given height, regardless
// of the schedule. Used for the final checkpoint on shutdown.
func (e *Engine) Make(height uint64) (*types.Checkpoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.makeCheckpoint(height)
}

func (e *Engine) makeCheckpoint(height uint64) (*types.Checkpoint, error) {
	cp := types.NewCheckpoint(height)
	for _, name := range cpOrder {
		comp, ok := e.components[name]
		if !ok {
			continue
		}
		data, err := comp.Checkpoint()
		if err != nil {
			return nil, fmt.Errorf("couldn't generate checkpoint for %s: %w", name, err)
		}
		if len(data) == 0 {
			continue
		}
		cp.Set(name, data)
	}
	cp.Hash = hex.EncodeToString(hash(cp))

	e.log.Debug("checkpoint taken",
		logging.Uint64("height", height),
		logging.String("hash", cp.Hash),
	)
	return cp, nil
}

// Load restores every component from the given checkpoint, in a fixed
// order. A checkpoint whose hash doesn't match its state is rejected
// before any component is touched.
func (e *Engine) Load(ctx context.Context, cp *types.Checkpoint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := Validate(cp); err != nil {
		return err
	}
	for name := range cp.State {
		if !slices.Contains(cpOrder, name) {
			return ErrUnknownCheckpointName
		}
	}

	for _, name := range cpOrder {
		data := cp.Get(name)
		if len(data) == 0 {
			continue
		}
		comp, ok := e.components[name]
		if !ok {
			return ErrUnknownCheckpointName
		}
		if err := comp.Load(ctx, data); err != nil {
			return fmt.Errorf("couldn't restore checkpoint for %s: %w", name, err)
		}
	}

	// reschedule from the restored height
	e.nextCP = cp.Height + e.cfg.IntervalHeights

	e.log.Info("checkpoint restored",
		logging.Uint64("height", cp.Height),
		logging.String("hash", cp.Hash),
	)
	return nil
}

// Validate recomputes the hash of the checkpoint state and compares it
// to the recorded one.
func Validate(cp *types.Checkpoint) error {
	if cp.Hash != hex.EncodeToString(hash(cp)) {
		return ErrCheckpointHashIncorrect
	}
	return nil
}

// hash digests the height and every component state, sorted by name so
// the result does not depend on map iteration order.
func hash(cp *types.Checkpoint) []byte {
	buf := bytes.Buffer{}
	fmt.Fprintf(&buf, "height#%d\n", cp.Height)
	names := maps.Keys(cp.State)
	slices.Sort(names)
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteRune('\n')
		buf.Write(cp.State[name])
		buf.WriteRune('\n')
	}
	return vgcrypto.Hash(buf.Bytes())
}
