package ruleconfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config errors.
var (
	// ErrInvalidConfig is returned when the document cannot be parsed.
	ErrInvalidConfig = errors.New("invalid rule configuration")

	// ErrEmptyParamName is returned when a parameter is keyed by an empty name.
	ErrEmptyParamName = errors.New("rule parameter name cannot be empty")
)

// Canonical parameter names shared by every environment.
const (
	// ParamPasswordFormat configures the password policy factory:
	// "min,max[,contain-pattern]".
	ParamPasswordFormat = "password_format"
)

// Config is the single shared source of rule parameters. Every environment
// adapter draws its parameter values from one Config value (compiled in,
// read from a file, or shipped to the client alongside the rule set), which
// is what keeps independently bound rule sets equivalent.
type Config struct {
	// Params maps parameter names to factory configuration strings.
	Params map[string]string `yaml:"params"`
}

// Default returns the compiled-in configuration: a 4–8 character password
// that must contain a digit.
func Default() *Config {
	return &Config{
		Params: map[string]string{
			ParamPasswordFormat: "4,8,[0-9]",
		},
	}
}

// Load parses a YAML configuration document.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for name := range cfg.Params {
		if name == "" {
			return nil, ErrEmptyParamName
		}
	}

	if cfg.Params == nil {
		cfg.Params = make(map[string]string)
	}
	return &cfg, nil
}

// LoadFile parses the YAML configuration file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer f.Close()

	return Load(f)
}

// Param returns the named parameter value.
func (c *Config) Param(name string) (string, bool) {
	value, ok := c.Params[name]
	return value, ok
}
