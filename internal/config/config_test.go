package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grade != 4 {
		t.Errorf("Grade = %d, want default 4", cfg.Grade)
	}
	if cfg.LogMode != "dev" {
		t.Errorf("LogMode = %q, want dev", cfg.LogMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADAPTIQ_GRADE", "2")
	t.Setenv("ADAPTIQ_DB", "/tmp/adaptiq-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grade != 2 || cfg.DBPath != "/tmp/adaptiq-test.db" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadGrade(t *testing.T) {
	t.Setenv("ADAPTIQ_GRADE", "20")
	if _, err := Load(); err == nil {
		t.Error("Load accepted out-of-range grade")
	}
}
