package config

import (
	"errors"
	"testing"
)

func clearPostEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "LANDSCAPE_DATA_SOURCE",
		"WORKDAY_ONLY", "ORIGINAL_HOLIDAYS", "CRUNCHBASE_API_KEY",
		"ICON_BASE_URL", "LANDSCAPE_SITE_BASE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadPostEnv_Defaults(t *testing.T) {
	clearPostEnv(t)

	cfg, err := LoadPostEnv()
	if err != nil {
		t.Fatalf("LoadPostEnv() error = %v", err)
	}
	if cfg.DataSource != DefaultDataSource {
		t.Errorf("DataSource = %q, want default", cfg.DataSource)
	}
	if cfg.WorkdayOnly {
		t.Error("WorkdayOnly = true, want false by default")
	}
}

func TestLoadPostEnv_Values(t *testing.T) {
	clearPostEnv(t)
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("LANDSCAPE_DATA_SOURCE", "https://example.com/landscape.yml")
	t.Setenv("WORKDAY_ONLY", "true")
	t.Setenv("ORIGINAL_HOLIDAYS", "2026-12-29,2026-12-30")

	cfg, err := LoadPostEnv()
	if err != nil {
		t.Fatalf("LoadPostEnv() error = %v", err)
	}
	if cfg.SlackBotToken != "xoxb-test" {
		t.Errorf("SlackBotToken = %q", cfg.SlackBotToken)
	}
	if cfg.DataSource != "https://example.com/landscape.yml" {
		t.Errorf("DataSource = %q", cfg.DataSource)
	}
	if !cfg.WorkdayOnly {
		t.Error("WorkdayOnly = false, want true")
	}

	gate, err := cfg.WorkdayGate()
	if err != nil {
		t.Fatalf("WorkdayGate() error = %v", err)
	}
	if !gate.Enabled {
		t.Error("gate.Enabled = false, want true")
	}
	if len(gate.ExtraHolidays) != 2 {
		t.Errorf("len(ExtraHolidays) = %d, want 2", len(gate.ExtraHolidays))
	}
}

func TestLoadPostEnv_BadBool(t *testing.T) {
	clearPostEnv(t)
	t.Setenv("WORKDAY_ONLY", "sometimes")

	_, err := LoadPostEnv()
	if !errors.Is(err, ErrEnvParse) {
		t.Errorf("LoadPostEnv() error = %v, want ErrEnvParse", err)
	}
}

func TestWorkdayGate_BadHolidays(t *testing.T) {
	cfg := &PostEnv{WorkdayOnly: true, ExtraHolidays: "not-a-date"}
	if _, err := cfg.WorkdayGate(); err == nil {
		t.Error("WorkdayGate() error = nil, want parse error")
	}

	cfg = &PostEnv{}
	gate, err := cfg.WorkdayGate()
	if err != nil {
		t.Fatalf("WorkdayGate() error = %v", err)
	}
	if gate.Enabled || len(gate.ExtraHolidays) != 0 {
		t.Errorf("WorkdayGate() = %+v, want disabled zero gate", gate)
	}
}
