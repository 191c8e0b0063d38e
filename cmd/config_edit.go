package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kurocha/supacha/internal/config"

	"github.com/spf13/cobra"
)

var configEditCmd = &cobra.Command{
	Use:   "edit [label]",
	Short: "Edit the current or a specified profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string

		if len(args) == 0 {
			var err error
			label, err = config.CurrentProfile()
			if err != nil {
				return fmt.Errorf("failed to get current profile label: %w", err)
			}
		} else {
			label = args[0]
		}

		path := config.ProfilePath(label)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("profile %q does not exist", label)
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		cmdExec := exec.Command(editor, path)
		cmdExec.Stdin = os.Stdin
		cmdExec.Stdout = os.Stdout
		cmdExec.Stderr = os.Stderr

		if err := cmdExec.Run(); err != nil {
			return fmt.Errorf("failed to open editor: %w", err)
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
