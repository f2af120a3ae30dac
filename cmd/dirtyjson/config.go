package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	modeAccelerated = "accelerated"
	modeScalar      = "scalar"

	defaultLogLevel = "info"
	defaultIndent   = "  "
)

// Config holds defaults for the command-line flags. Flags given on the
// command line or through their environment variables override it.
type Config struct {
	Mode     string `yaml:"mode"`
	Pretty   bool   `yaml:"pretty"`
	Validate bool   `yaml:"validate"`
	Indent   string `yaml:"indent"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Mode:     modeAccelerated,
		Indent:   defaultIndent,
		LogLevel: defaultLogLevel,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}

	return cfg, cfg.check()
}

func (c Config) check() error {
	switch c.Mode {
	case modeAccelerated, modeScalar:
	default:
		return errors.Errorf("invalid mode %q, must be %q or %q", c.Mode, modeAccelerated, modeScalar)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
