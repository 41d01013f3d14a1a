// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the forkify CLI: search the recipe
// API, view and scale recipes, keep bookmarks, and upload recipes of your
// own, one command at a time or from the interactive shell.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/forkify/internal/secrets"
	"github.com/pdiddy/forkify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	logger        = zap.NewNop()
	loadedSecrets secrets.Secrets
)

var rootCmd = &cobra.Command{
	Use:   "forkify",
	Short: "Search, scale, bookmark and upload recipes from the terminal",
	Long: `forkify browses the forkify recipe API. Search for recipes, open one to
see its ingredients, scale it to a different number of servings, and
bookmark the ones you like. Bookmarks are kept in a local SQLite database.

Recipes of your own can be uploaded with an API key stored in
.secrets/forkify-api-key or passed with --api-key.

Run "forkify shell" for an interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug("loaded secrets", zap.Strings("keys", keys))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./forkify.yaml or ~/.config/forkify/forkify.yaml)")
	pf.BoolP("verbose", "v", false, "log debug output to stderr")
	pf.String("api-url", types.DefaultAPIBase, "recipes endpoint of the forkify API")
	pf.String("api-key", "", "forkify API key (default: .secrets/forkify-api-key)")
	pf.Duration("timeout", types.DefaultTimeout, "timeout for each API request")
	pf.String("db", defaultDBPath(), `bookmark database file ("" keeps bookmarks in memory)`)
	pf.Int("per-page", types.DefaultResultsPerPage, "search results per page")
	pf.Bool("no-color", false, "disable colored output")

	viper.BindPFlag("api.base_url", pf.Lookup("api-url"))
	viper.BindPFlag("api.api_key", pf.Lookup("api-key"))
	viper.BindPFlag("api.timeout", pf.Lookup("timeout"))
	viper.BindPFlag("storage.path", pf.Lookup("db"))
	viper.BindPFlag("ui.results_per_page", pf.Lookup("per-page"))
	viper.BindPFlag("ui.no_color", pf.Lookup("no-color"))
	viper.SetDefault("storage.bookmarks_key", types.DefaultBookmarksKey)
	viper.SetDefault("ui.modal_close", types.DefaultModalClose)
	viper.SetDefault("api.user_agent", "forkify/"+version)
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "forkify")
}

func defaultDBPath() string {
	return filepath.Join(configDir(), "forkify.db")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("forkify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(configDir())
	}

	viper.SetEnvPrefix("FORKIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the effective configuration. The API key falls back to
// the secrets directory when neither a flag, env var nor config file set it.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.API.APIKey == "" {
		cfg.API.APIKey = loadedSecrets.APIKey()
	}
	return cfg.WithDefaults(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
