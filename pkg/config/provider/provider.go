package provider

import (
	"time"

	"github.com/ElmaazouziSara/song-stream-daily/pkg/config"

	"github.com/spf13/viper"
)

type cfg struct {
	v *viper.Viper
}

// LoadConfig reads the configuration file at the given path and returns a
// provider over it. The file format is inferred from the extension.
func LoadConfig(filepath string) (config.Config, error) {
	v := viper.New()

	v.SetConfigFile(filepath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return &cfg{v: v}, nil
}

// Bool returns the value associated with the key as a boolean. If the key is missing, def is returned.
func (cfg cfg) Bool(key string, def bool) bool {
	if !cfg.Contains(key) {
		return def
	}
	return cfg.v.GetBool(key)
}

// Duration returns the value associated with the key as a duration. If the key is missing, def is returned.
func (cfg cfg) Duration(key string, def time.Duration) time.Duration {
	if !cfg.Contains(key) {
		return def
	}
	return cfg.v.GetDuration(key)
}

// String returns the value associated with the key as a string. If the key is missing, def is returned.
func (cfg cfg) String(key string, def string) string {
	if !cfg.Contains(key) {
		return def
	}
	return cfg.v.GetString(key)
}

// Int returns the value associated with the key as a signed integer. If the key is missing, def is returned.
func (cfg cfg) Int(key string, def int) int {
	if !cfg.Contains(key) {
		return def
	}
	return cfg.v.GetInt(key)
}

// StringSlice returns the value associated with the key as a slice of strings. If the key is missing, def is returned.
func (cfg cfg) StringSlice(key string, def []string) []string {
	if !cfg.Contains(key) {
		return def
	}
	return cfg.v.GetStringSlice(key)
}

// Unmarshal decodes the value associated with the key into val.
func (cfg cfg) Unmarshal(key string, val any) error {
	if !cfg.Contains(key) {
		return nil
	}
	return cfg.v.UnmarshalKey(key, val)
}

// Contains checks if the key has been set. Contains is case-insensitive for a given key.
func (cfg cfg) Contains(key string) bool {
	return cfg.v.IsSet(key)
}
