// Root command for the rolodex CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/paths"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagFile      string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configStoreFile  string
	configRegion     string
	configCategories []string
)

var rootCmd = &cobra.Command{
	Use:     "rolodex",
	Short:   "Rolodex is a local contact record manager",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configStoreFile = cfg.GetString(cfgKeyStoreFile)
		configRegion = cfg.GetString(cfgKeyDefaultRegion)
		configCategories = cfg.GetStringSlice(cfgKeyCategories)

		level := parseLogLevel(cfg.GetString(cfgKeyLogLevel))
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "contact store file (default: platform data dir/contacts.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > ROLODEX_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveStoreFile returns the store file following the precedence chain:
// --file flag > ROLODEX_STORE_FILE env > config.yaml store_file > platform
// default. The env var outranks config.yaml because viper's AutomaticEnv
// already resolves it into configStoreFile.
func resolveStoreFile() (string, error) {
	return paths.ResolveStoreFile(flagFile, configStoreFile)
}

// parseLogLevel maps a config string to a slog level, defaulting to Info.
func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
