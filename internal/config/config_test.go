package config

import (
	"os"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Income != 5000 || cfg.General.Currency != "₹" {
		t.Fatalf("defaults = %+v", cfg.General)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Income = 72000
	cfg.Gemini.APIKey = "test-key"
	cfg.Budget.Split = []SplitEntry{
		{Category: "rent", Percent: 40},
		{Category: "savings", Percent: 60},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Income != 72000 {
		t.Fatalf("Income = %d, want 72000", got.General.Income)
	}
	if got.Gemini.APIKey != "test-key" {
		t.Fatalf("APIKey = %q", got.Gemini.APIKey)
	}
	if len(got.Budget.Split) != 2 || got.Budget.Split[0].Category != "rent" {
		t.Fatalf("Split = %+v", got.Budget.Split)
	}
}

func TestLoad_ClampsIncomeToMax(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Income = 999999
	cfg.General.IncomeMax = 100000
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Income != 100000 {
		t.Fatalf("Income = %d, want clamped to 100000", got.General.Income)
	}
}

func TestGetAPIKey_EnvWinsOverConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "from-config"

	t.Setenv("GEMINI_API_KEY", "from-env")
	if key := GetAPIKey(cfg); key != "from-env" {
		t.Fatalf("GetAPIKey = %q, want env value", key)
	}

	os.Unsetenv("GEMINI_API_KEY")
	if key := GetAPIKey(cfg); key != "from-config" {
		t.Fatalf("GetAPIKey = %q, want config value", key)
	}
}

func TestSplit_FallsBackOnInvalidEntries(t *testing.T) {
	cases := []struct {
		name  string
		split []SplitEntry
	}{
		{"empty", nil},
		{"missing_category", []SplitEntry{{Category: "", Percent: 50}}},
		{"negative_percent", []SplitEntry{{Category: "rent", Percent: -5}}},
		{"duplicate", []SplitEntry{{Category: "rent", Percent: 30}, {Category: "rent", Percent: 20}}},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.Budget.Split = tc.split
		shares := cfg.Split()
		if len(shares) != 5 || shares[0].Category != "rent" || shares[0].Percent != 30 {
			t.Fatalf("%s: Split() = %+v, want default split", tc.name, shares)
		}
	}
}

func TestSplit_UsesConfiguredEntries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Budget.Split = []SplitEntry{
		{Category: "rent", Percent: 50},
		{Category: "food", Percent: 30},
		{Category: "savings", Percent: 20},
	}

	shares := cfg.Split()
	if len(shares) != 3 || shares[2].Category != "savings" || shares[2].Percent != 20 {
		t.Fatalf("Split() = %+v", shares)
	}
}
