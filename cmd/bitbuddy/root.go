package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/bitbuddy/internal/config"
	"github.com/jask/bitbuddy/internal/logger"
	"github.com/jask/bitbuddy/internal/ranges"
	"github.com/jask/bitbuddy/internal/tui"
)

type rootOptions struct {
	configPath    string
	debug         bool
	value         string
	strictOverlap bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "bitbuddy",
		Short: "Explore the bits of a 64-bit value",
		Long: `bitbuddy shows the 64-bit binary expansion of a decimal or 0x hex value
and lets you drag-select bit ranges to read their hex values.

Example:
  bitbuddy --value 0xDEADBEEF
  bitbuddy bits 255
  bitbuddy hex 0xF0 7 4`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.toml")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write a debug log file")
	cmd.Flags().StringVar(&opts.value, "value", "", "Initial value (decimal or 0x hex)")
	cmd.Flags().BoolVar(&opts.strictOverlap, "strict-overlap", false, "Reject ranges sharing any bit, not only endpoints")

	cmd.AddCommand(newBitsCmd(), newHexCmd(), newKeysCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig reads configuration and starts the file logger. Callers
// defer logger.Close.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if opts.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	err = logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		Dir:     cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

func newController(cfg config.Config, strict bool) (*ranges.Controller, error) {
	policy, err := ranges.ParseOverlapPolicy(cfg.UI.Overlap)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if strict {
		policy = ranges.OverlapSpan
	}
	store := ranges.NewStore(
		ranges.WithOverlapPolicy(policy),
		ranges.WithColorPicker(ranges.NewRandomPicker(cfg.UI.Seed)),
		ranges.WithLogger(logger.L),
	)
	return ranges.NewController(store, logger.L), nil
}

func runTUI(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctrl, err := newController(cfg, opts.strictOverlap)
	if err != nil {
		return err
	}

	keys := tui.NewKeyRegistry()
	if err := tui.LoadKeybindings(keys, cfg.UI.Keybindings); err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}
	logger.Debug("keybindings loaded", "path", cfg.UI.Keybindings)

	model := tui.New(ctrl, tui.Options{
		Keys:         keys,
		InitialValue: opts.value,
		NoMouse:      !cfg.UI.Mouse,
	})
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting", "overlap", ctrl.Policy().String(), "mouse", cfg.UI.Mouse)
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		logger.Error("program exited", "err", err)
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("exiting")
	return nil
}
