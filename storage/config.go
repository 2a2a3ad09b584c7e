package storage

import (
	"fmt"

	"code.witanprotocol.io/witan/config/encoding"
	vgfs "code.witanprotocol.io/witan/libs/fs"
	"code.witanprotocol.io/witan/logging"
	"code.witanprotocol.io/witan/paths"

	"github.com/dgraph-io/badger/v2"
	"github.com/dgraph-io/badger/v2/options"
)

const (
	namedLogger       = "storage"
	badgerNamedLogger = "badger"
)

// ConfigOptions are the badger tunables for a single store.
type ConfigOptions struct {
	SyncWrites          encoding.Bool            `long:"sync-writes"`
	TableLoadingMode    encoding.FileLoadingMode `long:"table-loading-mode"`
	ValueLogLoadingMode encoding.FileLoadingMode `long:"value-log-loading-mode"`
	NumVersionsToKeep   int                      `long:"num-versions-to-keep"`
	MaxTableSize        int64                    `long:"max-table-size"`
	ValueLogFileSize    int64                    `long:"value-log-file-size"`
	NumCompactors       int                      `long:"num-compactors"`
	CompactL0OnClose    encoding.Bool            `long:"compact-l0-on-close"`
}

// Config represents the configuration of the storage package
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	Proposals   ConfigOptions `group:"Proposals" namespace:"proposals"`
	Votes       ConfigOptions `group:"Votes" namespace:"votes"`
	Params      ConfigOptions `group:"Params" namespace:"params"`
	Checkpoints ConfigOptions `group:"Checkpoints" namespace:"checkpoints"`
}

// DefaultStoreOptions supplies the default badger options used by every
// store. MaxTableSize is set low to keep badger from grabbing then
// releasing large amounts of memory.
func DefaultStoreOptions() ConfigOptions {
	fileio := encoding.FileLoadingMode{FileLoadingMode: options.FileIO}
	return ConfigOptions{
		SyncWrites:          true,
		TableLoadingMode:    fileio,
		ValueLogLoadingMode: fileio,
		NumVersionsToKeep:   1,
		MaxTableSize:        16 << 20,
		ValueLogFileSize:    1<<30 - 1,
		NumCompactors:       2,
		CompactL0OnClose:    true,
	}
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		Proposals:   DefaultStoreOptions(),
		Votes:       DefaultStoreOptions(),
		Params:      DefaultStoreOptions(),
		Checkpoints: DefaultStoreOptions(),
	}
}

// InitStoreDirectory creates the storage directory when missing.
func InitStoreDirectory(path string) error {
	return vgfs.EnsureDir(path)
}

// InitialiseStorage creates the directory of every store under the
// state home.
func InitialiseStorage(witanPaths paths.Paths) error {
	for _, home := range []paths.StatePath{
		paths.ProposalsStoreHome,
		paths.VotesStoreHome,
		paths.ParamsStoreHome,
		paths.CheckpointsStoreHome,
	} {
		if _, err := witanPaths.CreateStateDirFor(home); err != nil {
			return fmt.Errorf("couldn't create directory for %s: %w", home, err)
		}
	}
	return nil
}

func getOptionsFromConfig(cfg ConfigOptions, dir string, log *logging.Logger) badger.Options {
	opts := badger.DefaultOptions(dir)

	opts.SyncWrites = bool(cfg.SyncWrites)
	opts.TableLoadingMode = cfg.TableLoadingMode.Get()
	opts.ValueLogLoadingMode = cfg.ValueLogLoadingMode.Get()
	opts.NumVersionsToKeep = cfg.NumVersionsToKeep
	opts.MaxTableSize = cfg.MaxTableSize
	opts.ValueLogFileSize = cfg.ValueLogFileSize
	opts.NumCompactors = cfg.NumCompactors
	opts.CompactL0OnClose = bool(cfg.CompactL0OnClose)
	opts.Logger = log.Named(badgerNamedLogger)

	return opts
}
