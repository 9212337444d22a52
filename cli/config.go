package main

import (
	"os"

	trp "github.com/jicksta/tideman"
	"github.com/spf13/cobra"
)

// loadConfig layers defaults, the config file, the environment and finally explicit flags.
func loadConfig(cmd *cobra.Command, opts *options) (trp.Config, error) {
	cfg := trp.DefaultConfig()

	var err error
	if opts.configFile != "" {
		if cfg, err = cfg.LoadConfigFile(opts.configFile); err != nil {
			return trp.Config{}, err
		}
	}

	if cfg, err = cfg.FromEnv(os.Getenv); err != nil {
		return trp.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-candidates") {
		cfg.MaxCandidates = opts.maxCandidates
	}
	if flags.Changed("on-invalid") {
		cfg.InvalidBallot = trp.Policy(opts.onInvalid)
	}

	return cfg, cfg.Validate()
}
