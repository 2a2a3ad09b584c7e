package config

// Empty is the top level command descriptor given to the flags parser.
// Sub commands register themselves against it.
type Empty struct{}

// HomeFlag is embedded by sub commands accepting a custom witan home.
type HomeFlag struct {
	Home string `long:"home" description:"Path to the custom home for witan"`
}
