package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configName = "fsprof.toml"

// fileConfig carries defaults for flags that are tedious to repeat.
type fileConfig struct {
	StoreDir  string `toml:"store_dir"`
	Functions bool   `toml:"functions"`
}

// loadConfig reads fsprof.toml from the working directory when present.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(configName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read %s: %w", configName, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse %s: %w", configName, err)
	}
	log.WithField("config", configName).Debug("loaded configuration")
	return cfg, nil
}

// storeDir resolves the session directory: flag, then config file, then the
// store package default (signalled by an empty string).
func storeDir(cmd *cobra.Command, cfg fileConfig) string {
	if dir, _ := cmd.Flags().GetString("store-dir"); dir != "" {
		return dir
	}
	return cfg.StoreDir
}
