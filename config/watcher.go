package config

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/paths"

	"github.com/fsnotify/fsnotify"
)

const namedLogger = "cfgwatcher"

// Watcher looks for updates to the configuration file and hands the
// reloaded configuration to registered listeners.
type Watcher struct {
	log  *logging.Logger
	cfg  Config
	path string

	// to be used as an atomic
	hasChanged         int32
	cfgUpdateListeners []func(Config)
	useFuncs           []func(*Config) error
	mu                 sync.Mutex
}

// Option customises the watcher at construction time.
type Option func(*Watcher)

// Use registers functions applied to the configuration each time it is
// loaded, parsing cli flags over it being the canonical use.
func Use(use func(*Config) error) Option {
	return func(w *Watcher) {
		w.useFuncs = append(w.useFuncs, use)
	}
}

// NewWatcher loads the node configuration and watches the file for
// changes until the context is cancelled.
func NewWatcher(ctx context.Context, log *logging.Logger, witanPaths paths.Paths, opts ...Option) (*Watcher, error) {
	watcherLog := log.Named(namedLogger)
	// set this logger to debug level as we want to be notified for any
	// configuration changes at any time
	watcherLog.SetLevel(logging.DebugLevel)

	loader, err := InitialiseLoader(witanPaths)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		log:                watcherLog,
		cfg:                NewDefaultConfig(),
		path:               loader.ConfigFilePath(),
		cfgUpdateListeners: []func(Config){},
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := w.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(w.path); err != nil {
		return nil, err
	}

	w.log.Info("config watcher started successfully",
		logging.String("config", w.path))

	go w.watch(ctx, watcher)

	return w, nil
}

// OnTimeUpdate dispatches the reloaded configuration to the listeners.
// Dispatching on the tick keeps configuration changes aligned with
// height boundaries.
func (w *Watcher) OnTimeUpdate(_ context.Context, _ uint64) {
	if atomic.LoadInt32(&w.hasChanged) == 0 {
		// no changes we can return straight away
		return
	}
	// reset the atomic
	atomic.StoreInt32(&w.hasChanged, 0)
	// get the config and updates listeners
	cfg := w.Get()
	for _, f := range w.cfgUpdateListeners {
		f(cfg)
	}
}

// Get returns the last loaded version of the configuration.
func (w *Watcher) Get() Config {
	w.mu.Lock()
	conf := w.cfg
	w.mu.Unlock()
	return conf
}

// OnConfigUpdate registers functions to be called when the
// configuration is updated.
func (w *Watcher) OnConfigUpdate(fns ...func(Config)) {
	w.mu.Lock()
	w.cfgUpdateListeners = append(w.cfgUpdateListeners, fns...)
	w.mu.Unlock()
}

func (w *Watcher) load() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := paths.ReadStructuredFile(w.path, &w.cfg); err != nil {
		return err
	}

	for _, use := range w.useFuncs {
		if err := use(&w.cfg); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case event := <-watcher.Events:
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Rename == fsnotify.Rename {
				if event.Op&fsnotify.Rename == fsnotify.Rename {
					// vi does not write the file in place, it creates a
					// temporary file, deletes the original, then renames
					// the temporary file over it. Reloading on the spot
					// races the rename and fails with a no such file or
					// directory error, so leave the editor some time.
					time.Sleep(50 * time.Millisecond)
				}
				w.log.Info("configuration updated", logging.String("event", event.Name))
				if err := w.load(); err != nil {
					w.log.Error("unable to load configuration", logging.Error(err))
					continue
				}
				// set hasChanged to 1 to trigger configs update on the
				// next tick
				atomic.StoreInt32(&w.hasChanged, 1)
			}
		case err := <-watcher.Errors:
			w.log.Error("config watcher received error event", logging.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
