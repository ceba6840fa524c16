package cmd

import (
	"context"
	"testing"

	"budgetwise/internal/config"
	"budgetwise/internal/faq"
)

func TestBuildAdvisor_NoKeyStillServesCatalog(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.DefaultConfig()
	adv, ready := buildAdvisor(context.Background(), cfg)
	if ready {
		t.Fatal("advisor reported ready without an API key")
	}

	snap, err := buildSnapshot(cfg)
	if err != nil {
		t.Fatalf("buildSnapshot: %v", err)
	}

	ans, err := adv.AnswerQuestion(context.Background(), snap, "how to save on groceries")
	if err != nil {
		t.Fatalf("AnswerQuestion without key: %v", err)
	}
	if ans.Text != faq.DefaultCatalog[0].Answer {
		t.Fatalf("Text = %q, want the canned groceries answer", ans.Text)
	}
	if ans.Notice == "" {
		t.Fatal("keyless catalog answer carries no degradation notice")
	}
}

func TestLoadConfig_IncomeZeroOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := rootCmd.PersistentFlags().Set("income", "0"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.General.Income != 0 {
		t.Fatalf("Income = %d, want the explicit 0 override", cfg.General.Income)
	}
}

func TestOpenVectorsReusesHandle(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	closeVectors()

	a := openVectors()
	b := openVectors()
	if a == nil {
		t.Fatal("openVectors returned nil with a writable cache dir")
	}
	if a != b {
		t.Fatal("openVectors opened a second handle instead of reusing the first")
	}

	closeVectors()
	if vectors != nil {
		t.Fatal("closeVectors left the handle set")
	}
}
