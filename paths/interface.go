package paths

// Paths resolves where witan keeps its files, one method family per
// file class. The plain *PathFor methods only build the path, the
// Create* variants also make the parent directories.
type Paths interface {
	CachePathFor(CachePath) string
	ConfigPathFor(ConfigPath) string
	DataPathFor(DataPath) string
	StatePathFor(StatePath) string

	CreateCachePathFor(CachePath) (string, error)
	CreateCacheDirFor(CachePath) (string, error)
	CreateConfigPathFor(ConfigPath) (string, error)
	CreateConfigDirFor(ConfigPath) (string, error)
	CreateDataPathFor(DataPath) (string, error)
	CreateDataDirFor(DataPath) (string, error)
	CreateStatePathFor(StatePath) (string, error)
	CreateStateDirFor(StatePath) (string, error)
}

// New returns CustomPaths rooted at customHome when one is given, the
// XDG based DefaultPaths otherwise.
func New(customHome string) Paths {
	if len(customHome) != 0 {
		return &CustomPaths{CustomHome: customHome}
	}
	return &DefaultPaths{}
}
