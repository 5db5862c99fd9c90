package main

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// CurrencyConfig controls how money is printed
type CurrencyConfig struct {
	Symbol string `yaml:"symbol" json:"symbol"`
}

// ValidationConfig controls the parameter store's range checks
type ValidationConfig struct {
	// Strict rejects values outside the catalog's min/max. Off by default:
	// the documented ranges are hints and direct edits may exceed them.
	Strict bool `yaml:"strict" json:"strict"`
}

// ExportConfig holds report export settings
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" json:"output_dir"`
	Formats   []string `yaml:"formats" json:"formats"` // text, json, markdown, html, pdf, slides
	Title     string   `yaml:"title" json:"title"`
}

// InsightsAttempt is one SDK/model pair tried when generating insights
type InsightsAttempt struct {
	SDK   string `yaml:"sdk" json:"sdk"` // "genai" or "generative-ai"
	Model string `yaml:"model" json:"model"`
}

// InsightsConfig holds settings for the AI narrative summary
type InsightsConfig struct {
	Enabled     bool              `yaml:"enabled" json:"enabled"`
	APIKeyEnv   string            `yaml:"api_key_env" json:"api_key_env"`
	Temperature float32           `yaml:"temperature" json:"temperature"`
	Timeout     string            `yaml:"timeout" json:"timeout"` // per attempt, e.g. "30s"
	Attempts    []InsightsAttempt `yaml:"attempts" json:"attempts"`
}

// AttemptTimeout returns the per-attempt timeout (default 30s)
func (ic *InsightsConfig) AttemptTimeout() time.Duration {
	if d, err := time.ParseDuration(ic.Timeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr        string `yaml:"addr" json:"addr"`
	OpenBrowser *bool  `yaml:"open_browser" json:"open_browser"`
}

// ShouldOpenBrowser returns whether to launch a browser on start (default: true)
func (s *ServerConfig) ShouldOpenBrowser() bool {
	if s.OpenBrowser == nil {
		return true
	}
	return *s.OpenBrowser
}

// Selection is an initiative to preselect, with overrides for its defaults
type Selection struct {
	Key        string             `yaml:"key" json:"key"`
	Variant    FormulaVariant     `yaml:"variant,omitempty" json:"variant,omitempty"`
	Parameters map[string]float64 `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Config holds the complete configuration
type Config struct {
	Catalog    string           `yaml:"catalog,omitempty" json:"catalog,omitempty"` // Optional catalog override file
	Currency   CurrencyConfig   `yaml:"currency" json:"currency"`
	Validation ValidationConfig `yaml:"validation" json:"validation"`
	Export     ExportConfig     `yaml:"export" json:"export"`
	Insights   InsightsConfig   `yaml:"insights" json:"insights"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Selections []Selection      `yaml:"selections" json:"selections"`
}

// LoadConfig loads configuration from a YAML file. Missing fields keep the
// embedded defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := LoadDefaultConfig()
	if err != nil {
		return nil, err
	}
	// Selections replace rather than merge
	config.Selections = nil

	err = yaml.Unmarshal([]byte(stripPercentSigns(string(data))), config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	// Add a header comment with instructions
	header := []byte(`# HR ROI Calculator Configuration
# Generated interactively - feel free to edit manually
#
# selections: initiatives to preselect, with parameter overrides.
#   Percentages are whole numbers: productivity_gain: 18 (or 18%) means 18%.
# validation.strict: reject parameter values outside the catalog ranges.
# insights.api_key_env: environment variable holding the text-generation key.
#

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the default configuration from embedded default-config.yaml
func LoadDefaultConfig() (*Config, error) {
	var config Config
	err := yaml.Unmarshal([]byte(stripPercentSigns(defaultConfigYAML)), &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

var percentValue = regexp.MustCompile(`(:\s*)(-?\d+\.?\d*)%`)

// stripPercentSigns turns "key: 18%" into "key: 18". Parameters are stored
// as whole-number percentages so the sign carries no extra meaning.
func stripPercentSigns(content string) string {
	return percentValue.ReplaceAllStringFunc(content, func(match string) string {
		parts := percentValue.FindStringSubmatch(match)
		if len(parts) >= 3 {
			if num, err := strconv.ParseFloat(parts[2], 64); err == nil {
				return parts[1] + strconv.FormatFloat(num, 'f', -1, 64)
			}
		}
		return match
	})
}

// CurrencySymbol returns the configured symbol, defaulting to "$"
func (c *Config) CurrencySymbol() string {
	if c == nil || c.Currency.Symbol == "" {
		return "$"
	}
	return c.Currency.Symbol
}

// StoreOptions returns the parameter store options implied by the config
func (c *Config) StoreOptions() []StoreOption {
	if c != nil && c.Validation.Strict {
		return []StoreOption{WithRangeValidation()}
	}
	return nil
}

// ApplySelections selects every configured initiative and applies its overrides
func (c *Config) ApplySelections(store *ParameterStore) error {
	return ApplyScenario(store, &Scenario{Entries: c.Selections})
}
