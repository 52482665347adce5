package tui

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// keybindingConfig is one [[binding]] entry of keybindings.toml.
type keybindingConfig struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type keybindingFile struct {
	Binding []keybindingConfig `toml:"binding"`
}

// parseKeybindings decodes keybindings.toml content.
func parseKeybindings(data []byte) ([]keybindingConfig, error) {
	var f keybindingFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse keybindings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse keybindings: unknown key %q", undecoded[0].String())
	}
	return f.Binding, nil
}

// LoadKeybindings applies overrides from path to r. A missing file is not
// an error; the registry keeps its defaults.
func LoadKeybindings(r *KeyRegistry, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read keybindings: %w", err)
	}
	items, err := parseKeybindings(data)
	if err != nil {
		return err
	}
	if err := r.ApplyKeybindingConfig(items); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteKeybindings dumps the registry's current bindings to path so users
// have a complete file to edit.
func WriteKeybindings(r *KeyRegistry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create keybindings dir: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("# bitbuddy keybindings. Edit keys; scope and action must stay as listed.\n\n")
	if err := toml.NewEncoder(&buf).Encode(keybindingFile{Binding: r.ExportKeybindingConfig()}); err != nil {
		return fmt.Errorf("encode keybindings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write keybindings: %w", err)
	}
	return nil
}
