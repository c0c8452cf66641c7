package shell

import (
	"os"
	"path/filepath"
)

// rcPath returns the default path of the rc file, loaded at the start of the
// interactive mode.
func rcPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "egg", "rc.yaml"), nil
}

// dbPath returns the default path of the command history database.
func dbPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "egg", "db.bolt"), nil
}
