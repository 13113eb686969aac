package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
	if cfg.Server.Address != "localhost:6600" {
		t.Fatalf("unexpected default address %q", cfg.Server.Address)
	}
	if cfg.Notifications.Backend != NotifyDesktop {
		t.Fatalf("unexpected default backend %q", cfg.Notifications.Backend)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
address = "jukebox:6600"
dial_timeout = 2

[picker]
binary = "wofi"
extra_args = ["-theme", "dark"]

[notifications]
backend = " NTFY "
ntfy_topic = "https://ntfy.sh/music"

[quarantine]
path = "` + filepath.Join(dir, "quarantine") + `"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as found")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Server.Address != "jukebox:6600" {
		t.Fatalf("unexpected address %q", cfg.Server.Address)
	}
	if cfg.Server.DialTimeout != 2 {
		t.Fatalf("unexpected dial timeout %d", cfg.Server.DialTimeout)
	}
	if cfg.Picker.Binary != "wofi" {
		t.Fatalf("unexpected picker binary %q", cfg.Picker.Binary)
	}
	if cfg.Notifications.Backend != NotifyNtfy {
		t.Fatalf("backend must be normalized, got %q", cfg.Notifications.Backend)
	}
	if cfg.Player.Binary != "mpc" {
		t.Fatalf("unset sections must keep defaults, got %q", cfg.Player.Binary)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected missing file to be reported as not found")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Picker.Binary != "rofi" {
		t.Fatalf("expected defaults, got picker binary %q", cfg.Picker.Binary)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown backend",
			content: "[notifications]\nbackend = \"pigeon\"\n",
			want:    "notifications.backend",
		},
		{
			name:    "ntfy without topic",
			content: "[notifications]\nbackend = \"ntfy\"\n",
			want:    "ntfy_topic",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"loud\"\n",
			want:    "logging.level",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			want:    "logging.format",
		},
		{
			name:    "zero dial timeout",
			content: "[server]\ndial_timeout = 0\n",
			want:    "server.dial_timeout",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestExpandPathResolvesHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := expandPath("~/music/quarantine")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "music", "quarantine") {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file should exist after creation")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample must validate: %v", err)
	}
}
