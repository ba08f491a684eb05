// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted when no --config flag is given.
const ConfigEnv = "X509_INVENTORY_CONFIG"

const (
	// DefaultProductionPath is the production certificate store.
	DefaultProductionPath = "DataONEProdCA/certs"
	// DefaultTestPath is the test certificate store.
	DefaultTestPath = "DataONETestIntCA/certs"
)

// ErrInvalidConfig is returned when a config file does not match the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed config.schema.json
var configSchema string

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the settings a config file may provide. Command-line flags
// override every field.
type Config struct {
	Paths struct {
		// Production: store scanned by default.
		Production string `json:"production" yaml:"production"`
		// Test: store scanned with --test-ca.
		Test string `json:"test" yaml:"test"`
	} `json:"paths" yaml:"paths"`

	Scan struct {
		Recursive   bool `json:"recursive" yaml:"recursive"`
		SkipInvalid bool `json:"skipInvalid" yaml:"skipInvalid"`
	} `json:"scan" yaml:"scan"`

	Loader struct {
		// Kind: "native" or "openssl".
		Kind string `json:"kind" yaml:"kind"`
		// OpenSSL: binary used by the openssl loader.
		OpenSSL string `json:"openssl" yaml:"openssl"`
	} `json:"loader" yaml:"loader"`

	Subject struct {
		// Order: "reversed" or "encoded".
		Order string `json:"order" yaml:"order"`
	} `json:"subject" yaml:"subject"`

	Report struct {
		// Format: default output format when neither --output nor --csv is given.
		Format string `json:"format" yaml:"format"`
	} `json:"report" yaml:"report"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	config := &Config{}
	config.Paths.Production = DefaultProductionPath
	config.Paths.Test = DefaultTestPath
	config.Loader.Kind = "native"
	config.Loader.OpenSSL = "openssl"
	config.Subject.Order = "reversed"
	config.Report.Format = "table"
	return config
}

// detectConfigFormat determines the configuration file format from its extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig decodes data in the given format into v.
func unmarshalConfig(data []byte, v any, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validateConfig checks a decoded document against the embedded schema.
func validateConfig(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// LoadConfig loads configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. [ConfigEnv] is checked if configPath is empty
//  3. The file is validated against the schema, then its values override defaults
//
// Empty strings in the file keep the default.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := detectConfigFormat(configPath)

	var doc map[string]any
	if err := unmarshalConfig(data, &doc, format); err != nil {
		return nil, err
	}
	if doc == nil {
		// Empty file.
		return config, nil
	}
	if err := validateConfig(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	loaded := &Config{}
	if err := unmarshalConfig(data, loaded, format); err != nil {
		return nil, err
	}
	mergeConfig(config, loaded)

	return config, nil
}

// mergeConfig copies every non-zero field of src into dst.
func mergeConfig(dst, src *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&dst.Paths.Production, src.Paths.Production)
	setString(&dst.Paths.Test, src.Paths.Test)
	setString(&dst.Loader.Kind, src.Loader.Kind)
	setString(&dst.Loader.OpenSSL, src.Loader.OpenSSL)
	setString(&dst.Subject.Order, src.Subject.Order)
	setString(&dst.Report.Format, src.Report.Format)
	dst.Scan.Recursive = src.Scan.Recursive
	dst.Scan.SkipInvalid = src.Scan.SkipInvalid
}
