//go:build windows

package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/micmonay/keybd_event"
	"github.com/rs/zerolog"

	"github.com/sibber5/GlobalHotkeys/hotkeys"
)

// makeHandler builds the callback for one binding. Handlers run on the
// manager's listener goroutine, so they stay short: a log line, a clipboard
// write, or firing a ctrl+v.
func makeHandler(b Binding, log zerolog.Logger) (hotkeys.Handler, error) {
	switch b.Action {
	case "log":
		return func(e hotkeys.Event) {
			log.Info().
				Str("combo", hotkeys.FormatCombo(e.Mods, e.Key)).
				Int32("id", int32(e.ID)).
				Uint32("time", e.Time).
				Msg("hotkey pressed")
		}, nil
	case "clipboard":
		text := b.Text
		return func(hotkeys.Event) {
			if err := clipboard.WriteAll(text); err != nil {
				log.Error().Err(err).Msg("clipboard write failed")
			}
		}, nil
	case "paste":
		kb, err := keybd_event.NewKeyBonding()
		if err != nil {
			return nil, fmt.Errorf("paste action: %w", err)
		}
		kb.SetKeys(keybd_event.VK_V)
		kb.HasCTRL(true)
		return func(hotkeys.Event) {
			if err := kb.Launching(); err != nil {
				log.Error().Err(err).Msg("paste keystroke failed")
			}
		}, nil
	}
	return nil, fmt.Errorf("unknown action %q", b.Action)
}
