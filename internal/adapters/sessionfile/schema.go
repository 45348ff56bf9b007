package sessionfile

import "fmt"

const schemaVersion = 1

type fileSchema struct {
	Version int    `toml:"version"`
	Token   string `toml:"token"`
	SavedAt string `toml:"saved_at,omitempty"`
}

func (f fileSchema) validateVersion() error {
	if f.Version != 0 && f.Version != schemaVersion {
		return fmt.Errorf("unsupported session file version %d", f.Version)
	}
	return nil
}
