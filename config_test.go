package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig: %v", err)
	}
	if config.CurrencySymbol() != "$" {
		t.Errorf("currency = %q, want $", config.CurrencySymbol())
	}
	if config.Validation.Strict {
		t.Error("validation should be off by default")
	}
	if len(config.Export.Formats) != len(AllFormats) {
		t.Errorf("default export formats = %v", config.Export.Formats)
	}
	if !config.Insights.Enabled || config.Insights.APIKeyEnv != "GEMINI_API_KEY" {
		t.Errorf("unexpected insights config %+v", config.Insights)
	}
	if len(config.Insights.Attempts) == 0 {
		t.Error("expected default insights attempts")
	}
	if len(config.Selections) != 1 || config.Selections[0].Key != "leadership_development" {
		t.Errorf("default selections = %+v", config.Selections)
	}
	if !config.Server.ShouldOpenBrowser() {
		t.Error("browser should open by default")
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `currency:
  symbol: "€"
validation:
  strict: true
selections:
  - key: onboarding_excellence
    parameters:
      new_hires: 40
  - key: engagement_retention
    variant: basic
    parameters:
      turnover_reduction: 12%
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.CurrencySymbol() != "€" {
		t.Errorf("currency = %q", config.CurrencySymbol())
	}
	if !config.Validation.Strict {
		t.Error("strict should be true")
	}
	// Unset sections keep the defaults
	if config.Export.OutputDir != "reports" {
		t.Errorf("output dir = %q, want default", config.Export.OutputDir)
	}
	// Selections replace, not merge
	if len(config.Selections) != 2 || config.Selections[0].Key != "onboarding_excellence" {
		t.Fatalf("selections = %+v", config.Selections)
	}
	if got := config.Selections[1].Parameters["turnover_reduction"]; got != 12 {
		t.Errorf("percent sign should be stripped: got %v", got)
	}
	if len(config.StoreOptions()) != 1 {
		t.Error("strict config should yield range validation")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	config, _ := LoadDefaultConfig()
	config.Currency.Symbol = "£"
	path := filepath.Join(t.TempDir(), "saved.yaml")

	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.CurrencySymbol() != "£" {
		t.Errorf("currency = %q", loaded.CurrencySymbol())
	}
	if len(loaded.Selections) != len(config.Selections) {
		t.Errorf("selections lost: %d vs %d", len(loaded.Selections), len(config.Selections))
	}
}

func TestStripPercentSigns(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"productivity_gain: 18%", "productivity_gain: 18"},
		{"x: 2.5%", "x: 2.5"},
		{"x: -3%", "x: -3"},
		{"name: 18% growth plan", "name: 18 growth plan"},
		{"x: 18", "x: 18"},
		{"title: about 18%", "title: about 18%"},
	}
	for _, tc := range tests {
		if got := stripPercentSigns(tc.input); got != tc.expected {
			t.Errorf("stripPercentSigns(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestInsightsConfig_AttemptTimeout(t *testing.T) {
	ic := InsightsConfig{Timeout: "5s"}
	if ic.AttemptTimeout() != 5*time.Second {
		t.Errorf("timeout = %v", ic.AttemptTimeout())
	}
	ic.Timeout = "soon"
	if ic.AttemptTimeout() != 30*time.Second {
		t.Errorf("invalid timeout should default to 30s, got %v", ic.AttemptTimeout())
	}
}

func TestConfig_ApplySelections(t *testing.T) {
	config, _ := LoadDefaultConfig()
	config.Selections = []Selection{
		{Key: "recruiting_optimization", Variant: VariantBasic},
		{Key: "leadership_development", Parameters: map[string]float64{"participants": 10}},
	}
	store := newTestStore(t)
	if err := config.ApplySelections(store); err != nil {
		t.Fatalf("ApplySelections: %v", err)
	}
	if v, _ := store.Variant("recruiting_optimization"); v != VariantBasic {
		t.Errorf("variant = %s", v)
	}
	params, _ := store.Params("leadership_development")
	if params["participants"] != 10 {
		t.Errorf("participants = %v", params["participants"])
	}
}
