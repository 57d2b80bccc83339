package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeybindingsFile is the on-disk shape of keybindings.toml:
//
//	version = 1
//	[bindings]
//	quit = ["ctrl+q"]
type KeybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings returns action -> keys overrides. A missing file yields no
// overrides.
func LoadKeybindings(path string) (map[string][]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	var f KeybindingsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse keybindings %s: %w", path, err)
	}
	if f.Version > 1 {
		return nil, fmt.Errorf("keybindings %s: unsupported version %d", path, f.Version)
	}
	return normalizeActionKeyMap(f.Bindings), nil
}

func normalizeActionKeyMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		action = strings.ToLower(strings.TrimSpace(action))
		if action == "" {
			continue
		}
		clean := make([]string, 0, len(keys))
		for _, k := range keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				clean = append(clean, k)
			}
		}
		if len(clean) > 0 {
			out[action] = clean
		}
	}
	return out
}
