// Package schedconfig loads scheduler construction parameters from a YAML
// file, for deployments that prefer file-based configuration over
// call-site scheduler.Option values. It is grounded on the
// vmi_internal.LoadConfig / DefaultVmiConfig pattern in
// bgp59-victoriametrics-importer's vmi/internal/config.go: a
// Default*Config constructor seeds every field before the file is
// unmarshalled over it, so a partially-specified file still yields a
// fully-populated struct.
package schedconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-decodable shape of scheduler construction parameters.
//
//	scheduler_config:
//	  quantum: 3
//	  io: 4
//	  max_priority: 5
//	  max_events: 256
//	  log_config:
//	    use_json: false
//	    level: info
//	    file: ""
//	    file_max_size_mb: 10
//	    file_max_backups: 1
type Config struct {
	// Quantum is the number of scheduler-visible ticks (exec or fork calls)
	// a task may run before it is eligible for quantum-expiry preemption.
	Quantum uint `yaml:"quantum"`

	// IO is the number of distinct event ids tasks may Wait/Signal on,
	// bounded by MaxEvents.
	IO uint `yaml:"io"`

	// MaxPriority is the highest priority value a task may be forked with.
	MaxPriority int `yaml:"max_priority"`

	// MaxEvents bounds IO.
	MaxEvents int `yaml:"max_events"`

	// LogConfig configures the scheduler's diagnostic logger.
	LogConfig *LogConfig `yaml:"log_config"`
}

// LogConfig is the YAML-decodable shape of schedlog.Config.
type LogConfig struct {
	UseJSON        bool   `yaml:"use_json"`
	Level          string `yaml:"level"`
	File           string `yaml:"file"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
}

const (
	sectionName = "scheduler_config"

	defaultQuantum     = 1
	defaultIO          = 0
	defaultMaxPriority = 5
	defaultMaxEvents   = 256
)

// DefaultConfig returns the scheduler's defaults as a Config, matching
// config.defaultConfig in the root package.
func DefaultConfig() *Config {
	return &Config{
		Quantum:     defaultQuantum,
		IO:          defaultIO,
		MaxPriority: defaultMaxPriority,
		MaxEvents:   defaultMaxEvents,
		LogConfig: &LogConfig{
			Level:          "info",
			FileMaxSizeMB:  10,
			FileMaxBackups: 1,
		},
	}
}

// Load reads path and decodes its scheduler_config section over
// DefaultConfig, so a file that sets only a subset of fields still yields
// a fully populated Config. A missing file, unreadable file, or malformed
// YAML is returned as an error; a well-formed file with no
// scheduler_config section yields the unmodified defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", path, err)
	}

	return Parse(buf, path)
}

// Parse decodes buf (the raw contents of a config file) the same way Load
// does. name is used only to annotate error messages.
func Parse(buf []byte, name string) (*Config, error) {
	docNode := yaml.Node{}
	if err := yaml.Unmarshal(buf, &docNode); err != nil {
		return nil, fmt.Errorf("file %q: %w", name, err)
	}

	cfg := DefaultConfig()
	if docNode.Kind != yaml.DocumentNode || len(docNode.Content) == 0 {
		return cfg, nil
	}

	rootNode := docNode.Content[0]
	if rootNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("file %q: invalid YAML root node %q", name, rootNode.Tag)
	}

	for i := 0; i+1 < len(rootNode.Content); i += 2 {
		key, val := rootNode.Content[i], rootNode.Content[i+1]
		if key.Value != sectionName {
			continue
		}
		if err := val.Decode(cfg); err != nil {
			return nil, fmt.Errorf("file %q: %w", name, err)
		}
	}

	return cfg, nil
}
