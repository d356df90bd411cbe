package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssidorov-gg/apache-ignite/internal/cli"
	"github.com/ssidorov-gg/apache-ignite/internal/store"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     *slog.Logger

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
	dbFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "ignitegen",
	Short: "Apache Ignite configuration code generator",
	Long: `ignitegen - Apache Ignite configuration code generator

ignitegen turns cluster documents into Java code that builds an
IgniteConfiguration, emitting only the settings that differ from Ignite
defaults.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verbose, quiet)
		slog.SetDefault(logger)

		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}
		if configPath != "" {
			logger.Debug("loaded configuration", "path", configPath)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupGenerate = "generate"
	groupClusters = "clusters"
	groupUtility  = "utility"
)

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover ignitegen.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database URL for the cluster store and generation ledger")

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generate:"},
		&cobra.Group{ID: groupClusters, Title: "Clusters:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	generateCmd.GroupID = groupGenerate
	doctorCmd.GroupID = groupGenerate
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(doctorCmd)

	clustersCmd.GroupID = groupClusters
	rootCmd.AddCommand(clustersCmd)

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// newLogger returns a text logger on stderr. -v enables debug records and
// -q limits output to errors.
func newLogger(verbose int, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose > 0:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBool returns true if any of the provided values is true.
// Used for boolean flags where any true value should win.
func resolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}

// resolveInt returns the first positive value.
func resolveInt(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// resolveDSN returns the database DSN from the --db flag or config, or ""
// when no database is configured.
func resolveDSN() (string, error) {
	if dbFlag != "" {
		return dbFlag, nil
	}
	if !cfg.HasDatabase() {
		return "", nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	return dsn, nil
}

// openStore opens the configured cluster store.
func openStore(ctx context.Context) (store.Store, error) {
	dsn, err := resolveDSN()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(ctx, store.Config{
		Dir:       cfg.Store.Dir,
		DSN:       dsn,
		CacheSize: cfg.Store.CacheSize,
		Logger:    logger,
	})
	if err != nil {
		return nil, cli.DBConnectError("opening cluster store", err)
	}
	return s, nil
}
