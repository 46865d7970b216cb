package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praateekmahajan/fsprof/pkg/inject"
)

var injectCmd = &cobra.Command{
	Use:   "inject [file]",
	Short: "Wrap source text in a profiling scope",
	Long:  `inject reads source text from a file or stdin and emits it wrapped in a profiling scope that prints the per-line report`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot read source %q: %w", args[0], err)
			}
		} else {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("cannot read stdin: %w", err)
			}
		}

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		functions, _ := cmd.Flags().GetBool("functions")
		fmt.Print(inject.Lines(lines, functions || cfg.Functions))
		return nil
	},
}

func init() {
	injectCmd.Flags().Bool("functions", false, "print the per-function report as well")
}
