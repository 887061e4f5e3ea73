package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tooba/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.LibraryDir != filepath.Join(tempHome, "tv") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	wantLogs := filepath.Join(tempHome, ".local", "share", "tooba", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Paths.Bind != "127.0.0.1:7788" {
		t.Fatalf("unexpected bind: %q", cfg.Paths.Bind)
	}
	if got := cfg.Library.VideoExtensions; len(got) != 4 || got[0] != ".mp4" {
		t.Fatalf("unexpected video extensions: %v", got)
	}
	if got := cfg.Library.ThumbExtensions; len(got) != 1 || got[0] != ".tbn" {
		t.Fatalf("unexpected thumb extensions: %v", got)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tooba.toml")
	body := strings.Join([]string{
		"[paths]",
		`library_dir = "` + filepath.Join(dir, "media") + `"`,
		`bind = "0.0.0.0:9000"`,
		"",
		"[library]",
		`video_extensions = ["MKV", "mp4"]`,
		"",
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.LibraryDir != filepath.Join(dir, "media") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	if cfg.Paths.Bind != "0.0.0.0:9000" {
		t.Fatalf("unexpected bind: %q", cfg.Paths.Bind)
	}
	// Extensions are lowercased and dotted.
	if got := cfg.Library.VideoExtensions; len(got) != 2 || got[0] != ".mkv" || got[1] != ".mp4" {
		t.Fatalf("unexpected video extensions: %v", got)
	}
	// Thumb extensions fall back to defaults when omitted.
	if got := cfg.Library.ThumbExtensions; len(got) != 1 || got[0] != ".tbn" {
		t.Fatalf("unexpected thumb extensions: %v", got)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tooba.toml")
	body := "[logging]\nformat = \"yaml\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported log format")
	}
	if !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("error should name the field, got: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample config: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/media/tv")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(tempHome, "media", "tv") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
