package version

import "runtime/debug"

var (
	buildVersion = "v0.1.0+dev"
	buildHash    = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	modified := false
	for _, v := range info.Settings {
		if v.Key == "vcs.revision" {
			buildHash = v.Value
		}
		if v.Key == "vcs.modified" {
			modified = true
		}
	}
	if modified {
		buildHash += "-modified"
	}
}

// Get returns the release version baked into the binary.
func Get() string {
	return buildVersion
}

// GetCommitHash returns the VCS revision the binary was built from,
// with a -modified suffix when the tree was dirty.
func GetCommitHash() string {
	return buildHash
}
