package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()

	want := []string{
		"artist", "album", "song", "random", "quarantine",
		"random-quarantine", "playlist", "status", "config", "test-notify",
	}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration to "+path) {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample file missing: %v", err)
	}
}

func TestConfigValidateAcceptsGoodFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\naddress = \"localhost:6600\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[notifications]\nbackend = \"pigeon\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := runCommand(t, "--config", path, "config", "validate"); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\naddress = \"jukebox:6600\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "jukebox:6600") {
		t.Fatalf("expected loaded value in output, got %q", out)
	}
	if !strings.Contains(out, "[picker]") {
		t.Fatalf("expected defaulted sections in output, got %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"KEY", "VALUE"}, [][]string{
		{"state", "play"},
		{"volume", "80"},
	})
	for _, want := range []string{"KEY", "VALUE", "state", "play", "volume", "80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in table output:\n%s", want, out)
		}
	}
	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty render for no headers")
	}
}
