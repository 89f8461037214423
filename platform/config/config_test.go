package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is empty")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/nurture")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("CORS_ORIGINS", "http://localhost:4200")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("FOLLOW_UP_DAYS_THRESHOLD", "5")
	t.Setenv("FOLLOW_UP_REMINDER_LEAD", "30m")
	t.Setenv("PHONE_DEFAULT_REGION", "ae")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetFollowUpDaysThreshold() != 5 {
		t.Fatalf("expected threshold 5, got %d", cfg.GetFollowUpDaysThreshold())
	}
	if cfg.GetFollowUpReminderLead() != 30*time.Minute {
		t.Fatalf("expected 30m reminder lead, got %s", cfg.GetFollowUpReminderLead())
	}
	if cfg.GetPhoneDefaultRegion() != "AE" {
		t.Fatalf("expected region AE, got %q", cfg.GetPhoneDefaultRegion())
	}
	if cfg.IsAIEnabled() {
		t.Fatalf("expected AI to be disabled without GEMINI_API_KEY")
	}
}

func TestLoadRejectsWildcardCORSWithCredentials(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/nurture")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for wildcard CORS with credentials")
	}
}
