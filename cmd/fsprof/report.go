package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/praateekmahajan/fsprof/pkg/profile"
	"github.com/praateekmahajan/fsprof/pkg/report"
	"github.com/praateekmahajan/fsprof/pkg/store"
)

var reportCmd = &cobra.Command{
	Use:   "report <session>",
	Short: "Render the per-line table for a saved session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := loadSession(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		report.PerLine(os.Stdout, s)
		if functions, _ := cmd.Flags().GetBool("functions"); functions || cfg.Functions {
			report.PerFunction(os.Stdout, s)
		}
		if detail, _ := cmd.Flags().GetBool("detail"); detail {
			report.Detail(os.Stdout, s)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("functions", false, "include the per-function table")
	reportCmd.Flags().Bool("detail", false, "include per-function latency percentiles")
}

// loadSession loads by path when the argument points at a file, otherwise by
// name from the store directory.
func loadSession(cmd *cobra.Command, cfg fileConfig, arg string) (*profile.Session, error) {
	if _, err := os.Stat(arg); err == nil {
		log.WithField("path", arg).Debug("loading session from path")
		return store.Load(arg)
	}
	log.WithField("session", arg).Debug("loading session from store")
	return store.LoadNamed(arg, storeDir(cmd, cfg))
}
