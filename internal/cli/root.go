// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Two-phase Rubik's cube solver",
	Long: `cubesolver finds short solutions for any legal 3x3x3 Rubik's cube state
using Kociemba's two-phase algorithm.

Cube states are given as 54-character facelet strings (faces U, R, F, D, L, B
in order, each row-major, using face letters as colors). Solves can also start
from a scramble sequence, and every solve is recorded to a local history.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		loadConfig()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.cubesolver/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads optional defaults (threads, timeout, max-length) from
// ~/.cubesolver/config.yaml. A missing file is not an error.
func loadConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(home, ".cubesolver"))

	viper.SetDefault("threads", 1)
	viper.SetDefault("timeout_ms", 1000)
	viper.SetDefault("max_length", 21)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("could not read config file")
		}
	}
}
