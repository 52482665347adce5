package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/bitbuddy/internal/bits"
	"github.com/jask/bitbuddy/internal/ranges"
	"github.com/jask/bitbuddy/internal/selection"
)

const appName = "bitbuddy"

type focusArea int

const (
	focusInput focusArea = iota
	focusGrid
)

const commandPageSize = 10

// Options configures a Model. Zero values give a model with default keys,
// mouse input enabled, and the system clipboard.
type Options struct {
	Keys         *KeyRegistry
	InitialValue string
	NoMouse      bool
	CopyText     func(string) error
}

// Model is the bubbletea model for the explorer. All range state lives in
// the controller; the model holds only view and gesture state.
type Model struct {
	ctrl     *ranges.Controller
	keys     *KeyRegistry
	commands *CommandRegistry
	input    textinput.Model
	gesture  selection.Gesture
	copyText func(string) error

	focus    focusArea
	cursor   int // display position of the keyboard cursor
	mouse    bool
	dragging bool
	width    int
	height   int

	status    string
	statusErr bool

	commandOpen        bool
	commandQuery       string
	commandCursor      int
	commandMatches     []CommandMatch
	commandSourceScope string
	lastCommandID      string
}

func New(ctrl *ranges.Controller, opts Options) Model {
	if ctrl == nil {
		ctrl = ranges.NewController(nil, nil)
	}
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	in := textinput.New()
	in.Placeholder = "decimal or 0x hex"
	in.Prompt = "› "
	in.CharLimit = 66
	in.Width = gridWidth - 4
	in.Focus()

	m := Model{
		ctrl:     ctrl,
		keys:     keys,
		commands: NewCommandRegistry(),
		input:    in,
		copyText: copyText,
		focus:    focusInput,
		cursor:   bits.Width - 1,
		mouse:    !opts.NoMouse,
	}
	if opts.InitialValue != "" {
		m.input.SetValue(opts.InitialValue)
		m.ctrl.SetInput(opts.InitialValue)
	} else if v := ctrl.State().Input; v != "" {
		m.input.SetValue(v)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) focusGrid() {
	m.focus = focusGrid
	m.input.Blur()
}

func (m Model) activeScope() string {
	if m.commandOpen {
		return scopeCommandPalette
	}
	if m.focus == focusGrid {
		return scopeGrid
	}
	return scopeInput
}
