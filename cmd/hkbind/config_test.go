package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
bindings:
  - keys: ctrl+alt+f9
    action: log
  - keys: win+v
    action: clipboard
    text: hello
  - keys: ctrl+shift+p
    action: paste
    no_repeat: false
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Bindings) != 3 {
		t.Fatalf("bindings = %d, want 3", len(cfg.Bindings))
	}
	if !cfg.Bindings[0].noRepeat() {
		t.Error("no_repeat should default to true")
	}
	if cfg.Bindings[2].noRepeat() {
		t.Error("no_repeat: false not honored")
	}
	if cfg.Bindings[1].Text != "hello" {
		t.Errorf("clipboard text = %q", cfg.Bindings[1].Text)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	cases := []struct {
		name, body, wantErr string
	}{
		{"empty", "bindings: []\n", "no bindings"},
		{"bad combo", "bindings:\n  - keys: ctrl+nosuch\n    action: log\n", "unknown key"},
		{"unknown action", "bindings:\n  - keys: ctrl+a\n    action: beep\n", "unknown action"},
		{"clipboard without text", "bindings:\n  - keys: ctrl+a\n    action: clipboard\n", "needs text"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, c.body)
			_, err := loadConfig(path)
			if err == nil {
				t.Fatal("loadConfig succeeded, want error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
