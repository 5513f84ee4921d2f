package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if conf != Default() {
		t.Errorf("Load() = %+v, want defaults", conf)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "backend_url: https://api.example.com\nuse_24h: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if conf.BackendURL != "https://api.example.com" {
		t.Errorf("BackendURL = %q", conf.BackendURL)
	}
	if !conf.Use24h {
		t.Error("Use24h = false, want true")
	}
	// Unset fields keep their defaults.
	if conf.Timezone != "US/Eastern" {
		t.Errorf("Timezone = %q, want default", conf.Timezone)
	}
	if conf.RefreshCron != "*/5 * * * *" {
		t.Errorf("RefreshCron = %q, want default", conf.RefreshCron)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend_url: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Default()
	want.BackendURL = "http://localhost:9999"
	want.Token = "sesame"
	want.Timezone = "Europe/Berlin"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
