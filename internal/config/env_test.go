package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ASTERIODS_TEST_VALUE", "set")

	if got := GetEnv("ASTERIODS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, want %q", got, "set")
	}
	if got := GetEnv("ASTERIODS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want %q", got, "fallback")
	}
}

func TestGetEnvEmptyValue(t *testing.T) {
	// An explicitly empty variable is still "set".
	t.Setenv("ASTERIODS_TEST_EMPTY", "")
	if got := GetEnv("ASTERIODS_TEST_EMPTY", "fallback"); got != "" {
		t.Errorf("GetEnv() = %q, want empty", got)
	}
}

func TestLoadSSH(t *testing.T) {
	t.Setenv("SSH_HOST", "127.0.0.1")
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("SSH_HOST_KEY", "")
	t.Setenv("ASTERIODS_ASSETS", "./data/../assets/")
	t.Setenv("ASTERIODS_LOG_LEVEL", "debug")

	cfg := LoadSSH()
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want 127.0.0.1", cfg.Host)
	}
	if cfg.Port != "2323" {
		t.Errorf("Port = %q, want 2323", cfg.Port)
	}
	if cfg.HostKeyPath != "" {
		t.Errorf("HostKeyPath = %q, want empty", cfg.HostKeyPath)
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want assets", cfg.AssetDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
