package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds per-project defaults read from propdoc.yaml in the
// working directory. Explicit flags and environment variables override
// every value in here.
type ProjectConfig struct {
	Output          string   `yaml:"output"`
	Template        string   `yaml:"template"`
	MetadataFolders []string `yaml:"metadata-folders"`
}

// ConfigFileName is the file Load looks for inside the given directory.
const ConfigFileName = propdoc.ProjectConfigFileName

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
