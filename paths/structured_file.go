package paths

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	vgfs "code.witanprotocol.io/witan/libs/fs"

	"github.com/BurntSushi/toml"
)

// ErrUnsupportedFileExtension is returned when the file to read or
// write doesn't use one of the supported encodings.
var ErrUnsupportedFileExtension = fmt.Errorf("unsupported file extension, expect \".json\" or \".toml\"")

// ReadStructuredFile reads the file at path and unmarshals its content
// into v. The encoding is picked from the file extension.
func ReadStructuredFile(path string, v interface{}) error {
	buf, err := vgfs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read file at %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(buf, v); err != nil {
			return fmt.Errorf("couldn't unmarshal JSON content of file at %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(buf, v); err != nil {
			return fmt.Errorf("couldn't unmarshal TOML content of file at %s: %w", path, err)
		}
	default:
		return ErrUnsupportedFileExtension
	}

	return nil
}

// WriteStructuredFile marshals v and writes the result to the file at
// path, creating it if needed. The encoding is picked from the file
// extension.
func WriteStructuredFile(path string, v interface{}) error {
	var buf []byte
	var err error

	switch filepath.Ext(path) {
	case ".json":
		buf, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("couldn't marshal content to JSON: %w", err)
		}
	case ".toml":
		buf, err = toml.Marshal(v)
		if err != nil {
			return fmt.Errorf("couldn't marshal content to TOML: %w", err)
		}
	default:
		return ErrUnsupportedFileExtension
	}

	if err := vgfs.WriteFile(path, buf); err != nil {
		return fmt.Errorf("couldn't write file at %s: %w", path, err)
	}

	return nil
}
