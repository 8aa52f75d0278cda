// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/netcodec/lib/codec"
	"github.com/bureau-foundation/netcodec/lib/metadata"
	"github.com/bureau-foundation/netcodec/lib/payload"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "NETCODEC_CONFIG"

// Config is the master configuration for netcodec.
type Config struct {
	// Codec configures the metadata tables used for XML.
	Codec CodecConfig `yaml:"codec"`

	// Output configures how the command line tool writes results.
	Output OutputConfig `yaml:"output"`

	// directory is where the config file was loaded from, used to
	// resolve relative extension file paths. Empty for Default().
	directory string
}

// CodecConfig overlays the built-in metadata tables.
type CodecConfig struct {
	// DefaultNamespace replaces the built-in default namespace when
	// set.
	DefaultNamespace string `yaml:"default_namespace"`

	// Plurals adds container tag -> item tag entries.
	Plurals map[string]string `yaml:"plurals"`

	// Attributes adds, per element tag, keys rendered as XML
	// attributes.
	Attributes map[string][]string `yaml:"attributes"`

	// ExtensionNamespaces adds prefix -> namespace URI bindings.
	ExtensionNamespaces map[string]string `yaml:"extension_namespaces"`

	// ExtensionFiles lists JSONC files merged over the tables in
	// order. Relative paths resolve against the config file's
	// directory.
	ExtensionFiles []string `yaml:"extension_files"`

	// NoDefaults starts from empty tables instead of the built-in
	// plural table. DefaultNamespace is then required.
	NoDefaults bool `yaml:"no_defaults"`
}

// OutputConfig configures the command line tool's output.
type OutputConfig struct {
	// Format is the output format when a command does not say:
	// "json", "xml", or a content type.
	// Default: json
	Format string `yaml:"format"`

	// Indent is the indentation unit for pretty output. Empty means
	// compact output.
	// Default: two spaces
	Indent string `yaml:"indent"`

	// Color selects syntax highlighting: "auto" (only on a terminal),
	// "always", or "never".
	// Default: auto
	Color string `yaml:"color"`

	// Compression wraps written payloads: "none", "lz4", or "zstd".
	// Default: none
	Compression string `yaml:"compression"`
}

// Default returns the default configuration: the built-in metadata
// tables and indented, auto-colored JSON output.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:      "json",
			Indent:      "  ",
			Color:       "auto",
			Compression: "none",
		},
	}
}

// Load loads configuration from the NETCODEC_CONFIG environment
// variable. There is no fallback: if the variable is not set, Load
// fails and the caller decides whether Default is acceptable.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your netcodec.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, on top of
// [Default].
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg.directory = filepath.Dir(absolute)

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// extension file paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"NETCODEC_CONFIG_DIR": c.directory,
		"HOME":                os.Getenv("HOME"),
	}
	for i, path := range c.Codec.ExtensionFiles {
		c.Codec.ExtensionFiles[i] = expandVars(path, vars)
	}
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Codec.NoDefaults && c.Codec.DefaultNamespace == "" {
		errs = append(errs, errors.New("codec.default_namespace is required when codec.no_defaults is set"))
	}

	if _, err := codec.ParseFormatName(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}

	colorValues := []string{"auto", "always", "never"}
	if !contains(colorValues, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", colorValues))
	}

	if _, err := payload.ParseCompression(c.Output.Compression); err != nil {
		errs = append(errs, fmt.Errorf("output.compression: %w", err))
	}

	for _, path := range c.Codec.ExtensionFiles {
		if path == "" {
			errs = append(errs, errors.New("codec.extension_files contains an empty path"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// Tables returns the effective metadata tables: the built-in defaults
// (unless disabled), the codec section, then each extension file in
// order.
func (c *Config) Tables() (metadata.Tables, error) {
	var tables metadata.Tables
	if !c.Codec.NoDefaults {
		tables = metadata.Defaults()
	}
	tables = tables.Merge(metadata.Tables{
		DefaultNamespace:    c.Codec.DefaultNamespace,
		Plurals:             c.Codec.Plurals,
		Attributes:          c.Codec.Attributes,
		ExtensionNamespaces: c.Codec.ExtensionNamespaces,
	})

	for _, path := range c.Codec.ExtensionFiles {
		overlay, err := LoadExtensionFile(c.resolve(path))
		if err != nil {
			return metadata.Tables{}, err
		}
		tables = tables.Merge(overlay)
	}
	return tables, nil
}

// Metadata compiles the effective tables.
func (c *Config) Metadata() (*metadata.Metadata, error) {
	tables, err := c.Tables()
	if err != nil {
		return nil, err
	}
	md, err := metadata.New(tables)
	if err != nil {
		return nil, fmt.Errorf("invalid codec tables: %w", err)
	}
	return md, nil
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.directory == "" {
		return path
	}
	return filepath.Join(c.directory, path)
}

// LoadExtensionFile reads a JSONC extension file. The file is either
// a tables document:
//
//	{
//	  // Resources added by the load balancer extension.
//	  "plurals": {"pools": "pool"},
//	  "extension_namespaces": {"lb": "http://example.com/ext/lb/v1"}
//	}
//
// or a saved "list extensions" response, {"extensions": [...]}, whose
// entries' alias and namespace fields become extension namespaces.
func LoadExtensionFile(path string) (metadata.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metadata.Tables{}, fmt.Errorf("reading extension file: %w", err)
	}
	plain := jsonc.ToJSON(data)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(plain, &probe); err != nil {
		return metadata.Tables{}, fmt.Errorf("parsing extension file %s: %w", path, err)
	}

	if _, ok := probe["extensions"]; ok {
		response, err := codec.DecodeJSON(plain)
		if err != nil {
			return metadata.Tables{}, fmt.Errorf("parsing extension file %s: %w", path, err)
		}
		namespaces, err := metadata.ExtensionNamespacesFrom(response)
		if err != nil {
			return metadata.Tables{}, fmt.Errorf("extension file %s: %w", path, err)
		}
		return metadata.Tables{ExtensionNamespaces: namespaces}, nil
	}

	var tables metadata.Tables
	decoder := json.NewDecoder(bytes.NewReader(plain))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&tables); err != nil {
		return metadata.Tables{}, fmt.Errorf("parsing extension file %s: %w", path, err)
	}
	return tables, nil
}
