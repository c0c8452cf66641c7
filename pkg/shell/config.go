package shell

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// rcConfig is the schema of the rc file, a YAML document customizing the
// interactive session.
type rcConfig struct {
	// Prompt written before reading each command.
	Prompt string `yaml:"prompt"`
	// Prefix written before the echoed value of each command.
	ValuePrefix string `yaml:"value-prefix"`
	// Path of the command history database.
	DB string `yaml:"db"`
}

func defaultConfig() rcConfig {
	return rcConfig{Prompt: "egg> ", ValuePrefix: "▶ "}
}

// Reads the rc file from path. A missing file and an empty path are not
// errors; a malformed file is reported to stderr and otherwise ignored. Keys
// absent from the file keep their default values.
func readConfigOrDefault(path string, stderr io.Writer) rcConfig {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintln(stderr, "Warning: cannot read rc file:", err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(stderr, "Warning: cannot parse rc file %v: %v\n", path, err)
		return defaultConfig()
	}
	return cfg
}
