package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://jsonplaceholder.typicode.com/users" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.UI.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.UI.PageSize)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.UI.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: "http://localhost:8080/users"
  timeout: "3s"
ui:
  page_size: 10
  theme: dark
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/users" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("Timeout() = %v, want 3s", cfg.Timeout())
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.UI.PageSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  theme: light\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.API.BaseURL == "" {
		t.Error("partial file wiped the default base URL")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("USERDECK_BASE_URL", "http://env.example/users")
	t.Setenv("USERDECK_TIMEOUT", "7s")
	t.Setenv("USERDECK_PAGE_SIZE", "20")
	t.Setenv("USERDECK_THEME", "dark")
	t.Setenv("USERDECK_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://env.example/users" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 7*time.Second {
		t.Errorf("Timeout() = %v, want 7s", cfg.Timeout())
	}
	if cfg.UI.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.UI.PageSize)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestEnvOverridesBadPageSizeIgnored(t *testing.T) {
	t.Setenv("USERDECK_PAGE_SIZE", "zero")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.PageSize != 5 {
		t.Errorf("PageSize = %d, want default 5", cfg.UI.PageSize)
	}
}

func TestTimeoutFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Timeout = "bogus"
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout() = %v, want fallback 15s", cfg.Timeout())
	}

	cfg.API.Timeout = "-2s"
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("negative Timeout() = %v, want fallback 15s", cfg.Timeout())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.PageSize = 8
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UI.PageSize != 8 {
		t.Errorf("round-tripped PageSize = %d, want 8", loaded.UI.PageSize)
	}
}
