package cmd

import (
	"fmt"
	"os"

	"github.com/msgai/foundation/oracle"
	"gopkg.in/yaml.v3"
)

// configFile is looked up in the working directory.
const configFile = "msgai.yaml"

// Config is the optional file-based configuration. Flags override it.
type Config struct {
	// State is the path to the state database.
	State string `yaml:"state"`
	// Model is the model name resonance requests are sent to.
	Model string `yaml:"model"`
}

func defaultConfig() Config {
	return Config{State: "msgai.db", Model: oracle.DefaultModel}
}

// loadConfig reads msgai.yaml when present; an absent file yields the
// defaults, a malformed one is an error.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse %s: %w", configFile, err)
	}
	if cfg.State == "" {
		cfg.State = defaultConfig().State
	}
	if cfg.Model == "" {
		cfg.Model = defaultConfig().Model
	}
	return cfg, nil
}
