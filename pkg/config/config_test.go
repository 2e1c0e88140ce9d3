package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != "8080" {
		t.Errorf("host/port = %q/%q, want localhost/8080", cfg.Host, cfg.Port)
	}
	if cfg.PageSize != 10 {
		t.Errorf("page size = %d, want 10", cfg.PageSize)
	}
	if cfg.RequestTimeout.Duration != 10*time.Second {
		t.Errorf("request timeout = %v, want 10s", cfg.RequestTimeout.Duration)
	}
	if cfg.DBPath == "" {
		t.Error("db path is empty, want a default under the data directory")
	}
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "/tmp/test-catalog.db"
host = "0.0.0.0"
port = "9090"
page_size = 25
request_timeout = "30s"

[lexicon]
extra_cities = ["springfield"]
extra_stopwords = ["yo"]

[lexicon.corrections]
sprngfield = "springfield"

[lexicon.extra_expansions]
museum = ["art museum", "science museum"]
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DBPath != "/tmp/test-catalog.db" {
		t.Errorf("db path = %q, want /tmp/test-catalog.db", cfg.DBPath)
	}
	if cfg.ListenAddr() != "0.0.0.0:9090" {
		t.Errorf("listen addr = %q, want 0.0.0.0:9090", cfg.ListenAddr())
	}
	if cfg.PageSize != 25 {
		t.Errorf("page size = %d, want 25", cfg.PageSize)
	}
	if cfg.RequestTimeout.Duration != 30*time.Second {
		t.Errorf("request timeout = %v, want 30s", cfg.RequestTimeout.Duration)
	}
	if len(cfg.Lexicon.ExtraCities) != 1 || cfg.Lexicon.ExtraCities[0] != "springfield" {
		t.Errorf("extra cities = %v, want [springfield]", cfg.Lexicon.ExtraCities)
	}
	if cfg.Lexicon.Corrections["sprngfield"] != "springfield" {
		t.Errorf("corrections = %v, want sprngfield -> springfield", cfg.Lexicon.Corrections)
	}
	if got := cfg.Lexicon.ExtraExpansions["museum"]; len(got) != 2 || got[0] != "art museum" {
		t.Errorf("extra expansions = %v, want museum -> [art museum, science museum]",
			cfg.Lexicon.ExtraExpansions)
	}
}

func TestLoadConfigPartialFileFillsDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(`port = "3000"`), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("port = %q, want 3000", cfg.Port)
	}
	if cfg.Host != "localhost" || cfg.PageSize != 10 {
		t.Errorf("host/page size = %q/%d, want localhost/10", cfg.Host, cfg.PageSize)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("not = [valid"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig succeeded on invalid TOML, want error")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := &Config{
		DBPath:         "/tmp/roundtrip.db",
		Host:           "127.0.0.1",
		Port:           "8888",
		PageSize:       15,
		RequestTimeout: Duration{5 * time.Second},
	}
	if err := want.SaveConfig(configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if got.DBPath != want.DBPath || got.ListenAddr() != want.ListenAddr() {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.RequestTimeout.Duration != 5*time.Second {
		t.Errorf("request timeout = %v, want 5s", got.RequestTimeout.Duration)
	}
}

func TestSaveTemplateConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{DBPath: "/data/custom/catalog.db"}
	if err := cfg.SaveTemplateConfig(configPath); err != nil {
		t.Fatalf("SaveTemplateConfig failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}

	if !strings.Contains(string(data), "/data/custom/catalog.db") {
		t.Error("template does not contain the configured db path")
	}
	if strings.Contains(string(data), "/home/user/.local/share/placera") {
		t.Error("template still contains the placeholder db path")
	}
}

func TestGetDefaultDBPathHonorsXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	dbPath, err := GetDefaultDBPath()
	if err != nil {
		t.Fatalf("GetDefaultDBPath failed: %v", err)
	}

	want := filepath.Join(dataHome, "placera", "catalog.db")
	if dbPath != want {
		t.Errorf("db path = %q, want %q", dbPath, want)
	}
}
