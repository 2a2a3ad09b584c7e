// Package paths lays out the witan home directories. Every file the node
// touches lives under one of four base homes: cache for disposable
// artifacts, config for editable configuration, data for valuable data
// and state for recreatable state like stores and logs. The base homes
// follow the XDG Base Directory specification by default, or sit under a
// single custom root when one is given.
package paths

import "path/filepath"

// witanHome is the name of the directory for witan files inside each of
// the XDG base directories.
const witanHome = "witan"

// CachePath is a path relative to the cache home.
type CachePath string

func (p CachePath) String() string {
	return string(p)
}

// ConfigPath is a path relative to the config home.
type ConfigPath string

func (p ConfigPath) String() string {
	return string(p)
}

// DataPath is a path relative to the data home.
type DataPath string

func (p DataPath) String() string {
	return string(p)
}

// StatePath is a path relative to the state home.
type StatePath string

func (p StatePath) String() string {
	return string(p)
}

// JoinCachePath joins any number of path elements to a root CachePath.
func JoinCachePath(p CachePath, elems ...string) CachePath {
	return CachePath(join(p.String(), elems...))
}

// JoinConfigPath joins any number of path elements to a root ConfigPath.
func JoinConfigPath(p ConfigPath, elems ...string) ConfigPath {
	return ConfigPath(join(p.String(), elems...))
}

// JoinDataPath joins any number of path elements to a root DataPath.
func JoinDataPath(p DataPath, elems ...string) DataPath {
	return DataPath(join(p.String(), elems...))
}

// JoinStatePath joins any number of path elements to a root StatePath.
func JoinStatePath(p StatePath, elems ...string) StatePath {
	return StatePath(join(p.String(), elems...))
}

func join(p string, elems ...string) string {
	return filepath.Join(append([]string{p}, elems...)...)
}

// Config home layout.
var (
	// NodeConfigHome is the folder containing the configuration files
	// used by the node.
	NodeConfigHome = ConfigPath("node")

	// NodeDefaultConfigFile is the default configuration file for the
	// node.
	NodeDefaultConfigFile = JoinConfigPath(NodeConfigHome, "config.toml")

	// NodeGenesisFile is the genesis document the node state is
	// initialised from on first start.
	NodeGenesisFile = JoinConfigPath(NodeConfigHome, "genesis.json")
)

// State home layout.
var (
	// NodeStateHome is the folder containing the state of the node.
	NodeStateHome = StatePath("node")

	// NodeLogsHome is the folder containing the logs of the node.
	NodeLogsHome = JoinStatePath(NodeStateHome, "logs")

	// NodeStorageHome is the folder containing the archive stores of
	// the node.
	NodeStorageHome = JoinStatePath(NodeStateHome, "storage")

	// ProposalsStoreHome is the folder containing the proposal archive.
	ProposalsStoreHome = JoinStatePath(NodeStorageHome, "proposals")

	// VotesStoreHome is the folder containing the vote archive.
	VotesStoreHome = JoinStatePath(NodeStorageHome, "votes")

	// ParamsStoreHome is the folder containing the parameter archive.
	ParamsStoreHome = JoinStatePath(NodeStorageHome, "params")

	// CheckpointsStoreHome is the folder containing the checkpoint
	// archive.
	CheckpointsStoreHome = JoinStatePath(NodeStorageHome, "checkpoints")
)
