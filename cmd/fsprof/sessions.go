package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praateekmahajan/fsprof/pkg/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		names, err := store.List(storeDir(cmd, cfg))
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("no saved sessions")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
