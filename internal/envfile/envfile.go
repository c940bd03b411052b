package envfile

import (
	"encoding/json"

	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/pkg/fileutil"
)

// Config is one named environment definition, decoded from a single JSON
// document. It is immutable after Load returns.
type Config struct {
	// Name is the display name the environment is registered under.
	Name string `json:"name"`

	// Path lists directories to prepend to the executable search path,
	// in order.
	Path []string `json:"path"`

	// Lib lists directories to prepend to the dynamic-library search path,
	// in order.
	Lib []string `json:"lib"`

	// Variables maps variable names to values.
	Variables map[string]string `json:"variables"`

	// File is the path the config was loaded from. Not part of the JSON
	// contract; set by Load.
	File string `json:"-"`
}

// rawConfig mirrors Config with pointer fields so key presence can be
// distinguished from zero values. All four keys are required; extra keys
// are tolerated.
type rawConfig struct {
	Name      *string            `json:"name"`
	Path      *[]string          `json:"path"`
	Lib       *[]string          `json:"lib"`
	Variables *map[string]string `json:"variables"`
}

// Load reads and parses a single environment file.
//
// Malformed JSON yields ErrParseFailure; a document lacking any of the
// required top-level keys (name, path, lib, variables) yields
// ErrMissingField. Both are expected to be non-fatal to directory scans.
//
// Variable references ($VAR and ${VAR}) in variable values and in path/lib
// entries are expanded before the config is returned; see expand.go for the
// resolution policy.
func Load(path string) (*Config, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(errors.ErrParseFailure, "%s: %v", path, err)
	}

	switch {
	case raw.Name == nil:
		return nil, errors.Wrapf(errors.ErrMissingField, "%s: name", path)
	case raw.Path == nil:
		return nil, errors.Wrapf(errors.ErrMissingField, "%s: path", path)
	case raw.Lib == nil:
		return nil, errors.Wrapf(errors.ErrMissingField, "%s: lib", path)
	case raw.Variables == nil:
		return nil, errors.Wrapf(errors.ErrMissingField, "%s: variables", path)
	}

	cfg := &Config{
		Name:      *raw.Name,
		Path:      *raw.Path,
		Lib:       *raw.Lib,
		Variables: *raw.Variables,
		File:      path,
	}
	cfg.expand()

	return cfg, nil
}

// VarNames returns the variable names in sorted order. Iteration order of
// the underlying map is unspecified; all output paths use this ordering.
func (c *Config) VarNames() []string {
	return sortedKeys(c.Variables)
}
