package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "fsprof",
	Short: "Fast/slow dispatch profiler toolkit",
	Long:  `fsprof renders, compares, and manages saved fast/slow profiling sessions`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		log.SetLevel(logrus.WarnLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func main() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(injectCmd)

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().String("store-dir", "", "directory holding saved sessions")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
