/*
	Copyright 2024 Patrick Koehlmann
*/

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pkoehlmann/pitbook-go/log"
	backupCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/backup"
	chartCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/chart"
	exportCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/export"
	insightsCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/insights"
	migrateCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/migrate"
	seedCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/seed"
	setupdiffCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/setupdiff"
	statsCmd "github.com/pkoehlmann/pitbook-go/pkg/cmd/stats"
	"github.com/pkoehlmann/pitbook-go/pkg/config"
	"github.com/pkoehlmann/pitbook-go/version"
)

const envPrefix = "PITBOOK"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pitbook",
	Short: "Local logbook and analytics for hobby RC racers",
	Long: `pitbook keeps cars, tracks, events, setups and run logs in a local
sqlite database and derives lap time statistics, trends and setup change
insights from them.`,
	Version: version.FullVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.pitbook.yml)")

	rootCmd.PersistentFlags().StringVar(&config.DB, "db",
		defaultDBPath(),
		"path to the sqlite database file")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level",
		"info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format",
		"text",
		"log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter, "log-filter",
		"",
		"zapfilter rules for per-logger levels (e.g. 'debug:analytics.* info:*')")

	// add commands here
	rootCmd.AddCommand(migrateCmd.NewMigrateCmd())
	rootCmd.AddCommand(statsCmd.NewStatsCmd())
	rootCmd.AddCommand(insightsCmd.NewInsightsCmd())
	rootCmd.AddCommand(setupdiffCmd.NewSetupDiffCmd())
	rootCmd.AddCommand(exportCmd.NewExportCmd())
	rootCmd.AddCommand(backupCmd.NewBackupCmd())
	rootCmd.AddCommand(chartCmd.NewChartCmd())
	rootCmd.AddCommand(seedCmd.NewSeedCmd())
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pitbook.db"
	}
	return filepath.Join(home, ".pitbook", "pitbook.db")
}

func initLogger() {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.New(&log.Config{Level: level, Format: config.LogFormat, Filters: config.LogFilter})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".pitbook" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pitbook")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to PITBOOK_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
