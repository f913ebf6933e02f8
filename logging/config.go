package logging

import (
	"bytes"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable shape of a Logger's configuration.
type Config struct {
	// Level is a logrus level name (trace, debug, info, warn, error,
	// fatal, panic). Empty means info.
	Level string `yaml:"level"`
}

// LoadConfig decodes a Config from YAML bytes. Empty input yields a
// zero-value Config.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// ParseLevel resolves Level to a logrus.Level, defaulting to
// logrus.InfoLevel when Level is empty.
func (c *Config) ParseLevel() (logrus.Level, error) {
	if c.Level == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.Level)
}
