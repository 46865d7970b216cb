package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/praateekmahajan/fsprof/pkg/store"
)

var compareCmd = &cobra.Command{
	Use:   "compare <old> <new>",
	Short: "Show timing drift between two saved sessions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		old, err := loadSession(cmd, cfg, args[0])
		if err != nil {
			return err
		}
		cur, err := loadSession(cmd, cfg, args[1])
		if err != nil {
			return err
		}

		store.RenderComparison(os.Stdout, old, store.Compare(old, cur))
		return nil
	},
}
