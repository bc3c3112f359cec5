package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.tgd/config.toml.
type Config struct {
	DefaultSession string   `toml:"default_session"`
	Telegram       Telegram `toml:"telegram"`
}

// Telegram holds the TDLib client parameters sent during the
// setTdlibParameters handshake. APIID and APIHash come from
// https://my.telegram.org and are required to connect.
type Telegram struct {
	APIID              int32  `toml:"api_id"`
	APIHash            string `toml:"api_hash"`
	SystemLanguageCode string `toml:"system_language_code"`
	DeviceModel        string `toml:"device_model"`
	ApplicationVersion string `toml:"application_version"`
	UseTestDC          bool   `toml:"use_test_dc"`
	LogVerbosityLevel  int32  `toml:"log_verbosity_level"`
}

// Default returns a config with the TDLib parameter defaults filled in.
func Default() *Config {
	return &Config{
		Telegram: Telegram{
			SystemLanguageCode: "en",
			DeviceModel:        "Desktop",
			ApplicationVersion: "1.0",
		},
	}
}

// Load reads config from the given path. Returns an error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the fields required to reach Telegram are present.
func (c *Config) Validate() error {
	if c.Telegram.APIID == 0 {
		return fmt.Errorf("telegram.api_id is required")
	}
	if c.Telegram.APIHash == "" {
		return fmt.Errorf("telegram.api_hash is required")
	}
	return nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
