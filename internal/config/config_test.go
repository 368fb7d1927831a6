package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gndm/itunesSearch/internal/validation"
)

// chdirTemp runs the test in an empty directory so no stray .env or
// config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.URL != DefaultSearchURL {
		t.Errorf("Search.URL = %q, want %q", cfg.Search.URL, DefaultSearchURL)
	}
	if cfg.Search.Timeout != 10*time.Second {
		t.Errorf("Search.Timeout = %v, want 10s", cfg.Search.Timeout)
	}
	if cfg.Session.StrictSelection {
		t.Error("StrictSelection should default to false")
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ITUNES_SEARCH_URL", "http://localhost:9999/search")
	t.Setenv("ITUNES_TIMEOUT", "3s")
	t.Setenv("ITUNES_COUNTRY", "gb")
	t.Setenv("ITUNES_MEDIA", "music")
	t.Setenv("STRICT_SELECTION", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.URL != "http://localhost:9999/search" {
		t.Errorf("Search.URL = %q", cfg.Search.URL)
	}
	if cfg.Search.Timeout != 3*time.Second {
		t.Errorf("Search.Timeout = %v, want 3s", cfg.Search.Timeout)
	}
	if cfg.Search.Country != "gb" || cfg.Search.Media != "music" {
		t.Errorf("Search = %+v", cfg.Search)
	}
	if !cfg.Session.StrictSelection {
		t.Error("StrictSelection = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	data := "search:\n  country: us\n  timeout: 5s\nsession:\n  strict_selection: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	// Environment wins over the file.
	t.Setenv("ITUNES_COUNTRY", "ca")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.Timeout != 5*time.Second {
		t.Errorf("Search.Timeout = %v, want 5s", cfg.Search.Timeout)
	}
	if cfg.Search.Country != "ca" {
		t.Errorf("Search.Country = %q, want ca", cfg.Search.Country)
	}
	if !cfg.Session.StrictSelection {
		t.Error("StrictSelection = false, want true")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ITUNES_MEDIA=movie\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable process-wide; register cleanup first.
	t.Setenv("ITUNES_MEDIA", "")
	os.Unsetenv("ITUNES_MEDIA")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.Media != "movie" {
		t.Errorf("Search.Media = %q, want movie", cfg.Search.Media)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"bad url", "ITUNES_SEARCH_URL", "not a url", "URL"},
		{"bad media", "ITUNES_MEDIA", "radio", "Media"},
		{"bad country", "ITUNES_COUNTRY", "usa", "Country"},
		{"bad level", "LOG_LEVEL", "loud", "Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *validation.Error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %s", err, tt.want)
			}
		})
	}
}
