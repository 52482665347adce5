package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action    Action
	Keys      []string
	Help      string
	Scopes    []string
	CommandID string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal         = "global"
	scopeInput          = "input"
	scopeGrid           = "grid"
	scopeCommandPalette = "command_palette"
)

const (
	actionQuit           Action = "quit"
	actionFocusNext      Action = "focus_next"
	actionFocusInput     Action = "focus_input"
	actionFocusGrid      Action = "focus_grid"
	actionCommandPalette Action = "command_palette"
	actionClearInput     Action = "clear_input"
	actionResetRanges    Action = "reset_ranges"
	actionUndoRange      Action = "undo_range"
	actionCopyRanges     Action = "copy_ranges"
	actionCursorLeft     Action = "cursor_left"
	actionCursorRight    Action = "cursor_right"
	actionNibbleLeft     Action = "nibble_left"
	actionNibbleRight    Action = "nibble_right"
	actionCursorStart    Action = "cursor_start"
	actionCursorEnd      Action = "cursor_end"
	actionSelect         Action = "select"
	actionCancel         Action = "cancel"
	actionNavigateUp     Action = "navigate_up"
	actionNavigateDown   Action = "navigate_down"
	actionClose          Action = "close"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}
	cmd := func(scope string, action Action, keys []string, help, commandID string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}, CommandID: commandID})
	}

	// Global fallback lookup. Input scope sees only these, so none of them
	// may be a printable key.
	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")
	reg(scopeGlobal, actionFocusNext, []string{"tab"}, "focus")
	reg(scopeGlobal, actionCommandPalette, []string{"ctrl+k"}, "commands")
	cmd(scopeGlobal, actionClearInput, []string{"ctrl+l"}, "clear", "input:clear")
	cmd(scopeGlobal, actionResetRanges, []string{"ctrl+r"}, "reset ranges", "ranges:reset")

	reg(scopeInput, actionFocusGrid, []string{"esc", "enter"}, "to grid")

	reg(scopeGrid, actionCursorLeft, []string{"h/l", "h", "left"}, "move")
	reg(scopeGrid, actionCursorRight, []string{"l", "right"}, "")
	reg(scopeGrid, actionNibbleLeft, []string{"H", "shift+left"}, "nibble")
	reg(scopeGrid, actionNibbleRight, []string{"L", "shift+right"}, "")
	reg(scopeGrid, actionCursorStart, []string{"0/$", "0", "home"}, "edge")
	reg(scopeGrid, actionCursorEnd, []string{"$", "end"}, "")
	reg(scopeGrid, actionSelect, []string{"space", "enter"}, "select")
	reg(scopeGrid, actionCancel, []string{"esc"}, "cancel")
	cmd(scopeGrid, actionUndoRange, []string{"u"}, "undo", "ranges:undo")
	cmd(scopeGrid, actionResetRanges, []string{"r"}, "reset", "ranges:reset")
	cmd(scopeGrid, actionCopyRanges, []string{"y"}, "copy", "ranges:copy")
	cmd(scopeGrid, actionClearInput, []string{"c"}, "clear", "input:clear")
	cmd(scopeGrid, actionFocusInput, []string{"i", "/"}, "edit value", "focus:input")
	reg(scopeGrid, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeCommandPalette, actionNavigateUp, []string{"up/down", "up", "ctrl+p"}, "navigate")
	reg(scopeCommandPalette, actionNavigateDown, []string{"down", "ctrl+n"}, "")
	reg(scopeCommandPalette, actionSelect, []string{"enter"}, "run")
	reg(scopeCommandPalette, actionClose, []string{"esc"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves keyName in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings returns footer entries for scope. Bindings with an empty
// help text are folded into a neighbour and skipped.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// KeyFor returns the first key bound to action in scope, or fallback.
func (r *KeyRegistry) KeyFor(scope string, action Action, fallback string) string {
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return fallback
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Keep single uppercase runes distinct from their lowercase key.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// ApplyKeybindingConfig rebinds existing (scope, action) pairs. It fails
// without partial effect on unknown scopes or actions, duplicate entries,
// or two actions sharing a key in one scope.
func (r *KeyRegistry) ApplyKeybindingConfig(items []keybindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	pending := make(map[*Binding][]string)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding scope=%q action=%q: duplicated entry", scope, action)
		}
		seenPair[p] = true
		pending[target] = keys
	}

	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			keys := b.Keys
			if next, ok := pending[b]; ok {
				keys = next
			}
			for _, k := range keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}

	for b, keys := range pending {
		b.Keys = keys
	}
	r.rebuildIndex()
	return nil
}

func (r *KeyRegistry) ExportKeybindingConfig() []keybindingConfig {
	if r == nil {
		return nil
	}
	var out []keybindingConfig
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, keybindingConfig{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
