package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/bitbuddy/internal/config"
	"github.com/jask/bitbuddy/internal/tui"
)

func newKeysCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Write the keybindings file",
		Long: `Write every key binding, including any overrides already in the file,
to keybindings.toml so it can be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				cfg, err := config.Load(opts.configPath)
				if err != nil {
					return fmt.Errorf("config: %w", err)
				}
				path = cfg.UI.Keybindings
			}
			r := tui.NewKeyRegistry()
			if err := tui.LoadKeybindings(r, path); err != nil {
				return err
			}
			if err := tui.WriteKeybindings(r, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: ui.keybindings)")
	return cmd
}
