package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sibber5/GlobalHotkeys/hotkeys"
)

// Config is the bindings file: a list of combos and what to do when they
// fire.
type Config struct {
	Bindings []Binding `yaml:"bindings"`
}

type Binding struct {
	// Keys is the combo, e.g. "ctrl+alt+f9".
	Keys string `yaml:"keys"`
	// Action is "log", "clipboard" or "paste".
	Action string `yaml:"action"`
	// Text is the payload for the clipboard action.
	Text string `yaml:"text,omitempty"`
	// NoRepeat suppresses repeats while the key is held. Defaults to true.
	NoRepeat *bool `yaml:"no_repeat,omitempty"`
}

func (b Binding) noRepeat() bool {
	return b.NoRepeat == nil || *b.NoRepeat
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(cfg.Bindings) == 0 {
		return nil, fmt.Errorf("%s: no bindings", path)
	}
	for i, b := range cfg.Bindings {
		if _, _, err := hotkeys.ParseCombo(b.Keys); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		switch b.Action {
		case "log", "paste":
		case "clipboard":
			if b.Text == "" {
				return nil, fmt.Errorf("binding %d (%s): clipboard action needs text", i, b.Keys)
			}
		default:
			return nil, fmt.Errorf("binding %d (%s): unknown action %q", i, b.Keys, b.Action)
		}
	}
	return &cfg, nil
}
