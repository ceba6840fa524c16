// Package config loads and saves budgetwise configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"budgetwise/internal/budget"

	"github.com/BurntSushi/toml"
)

// Config holds all budgetwise configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Gemini     GeminiConfig     `toml:"gemini"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds income and presentation preferences.
type GeneralConfig struct {
	Income    int64  `toml:"income"`
	IncomeMax int64  `toml:"income_max"`
	Currency  string `toml:"currency"`
}

// BudgetConfig holds the default category split. Empty means the built-in
// 30/25/15/10/20 split.
type BudgetConfig struct {
	Split []SplitEntry `toml:"split,omitempty"`
}

// SplitEntry is one category's default percentage of income.
type SplitEntry struct {
	Category string `toml:"category"`
	Percent  int64  `toml:"percent"`
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	APIKey        string `toml:"api_key,omitempty"`
	GenerateModel string `toml:"generate_model,omitempty"`
	EmbedModel    string `toml:"embed_model,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Income:    5000,
			IncomeMax: 200000,
			Currency:  "₹",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetwise")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CatalogPath returns the path of the optional FAQ catalog override file.
func CatalogPath() string {
	return filepath.Join(ConfigDir(), "faq.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.Income < 0 {
		cfg.General.Income = 0
	}
	if cfg.General.IncomeMax <= 0 {
		cfg.General.IncomeMax = DefaultConfig().General.IncomeMax
	}
	if cfg.General.Income > cfg.General.IncomeMax {
		cfg.General.Income = cfg.General.IncomeMax
	}
	if cfg.General.Currency == "" {
		cfg.General.Currency = DefaultConfig().General.Currency
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetAPIKey returns the Gemini API key from env var or config, in that
// order. Empty means generation and matching are unavailable.
func GetAPIKey(cfg Config) string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.Gemini.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Split returns the configured category split, falling back to the
// built-in default when the config's split is missing or unusable.
func (c Config) Split() []budget.Share {
	if len(c.Budget.Split) == 0 {
		return budget.DefaultSplit
	}

	seen := make(map[string]bool, len(c.Budget.Split))
	shares := make([]budget.Share, 0, len(c.Budget.Split))
	for _, e := range c.Budget.Split {
		if e.Category == "" || e.Percent < 0 || seen[e.Category] {
			return budget.DefaultSplit
		}
		seen[e.Category] = true
		shares = append(shares, budget.Share{Category: e.Category, Percent: e.Percent})
	}
	return shares
}
