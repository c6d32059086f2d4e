// Copyright © 2025 Slipway Authors

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slipway",
	Short: "Slipway decides when your next release is ready, and ships it",
	Long: `Slipway reads the commit history since your last release, groups it into
units of delivered work, scores release readiness, writes the changelog and
executes the release (tag, push, host release).

Every invocation recomputes the analysis from scratch; nothing is persisted
between runs.`,
}

var config *CLIConfig

// used to patch over calls to os.Exit() during test
var logFatalln = log.Fatalln
var logFatalf = log.Fatalf
var osExit = os.Exit

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addRepoPathFlag(rootCmd)
	addLogLevelFlag(rootCmd)
	addFormatFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// tokens and API keys may live in a local .env
	_ = godotenv.Load()

	viper.SetDefault("provider", "anthropic")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("versioning", "semantic")
	viper.SetDefault("release.mode", "confirm")
	viper.SetDefault("release.threshold", 70)
	viper.SetDefault("release.min_work_units", 1)
	viper.SetDefault("github.create_release", true)
	viper.SetDefault("github.generate_notes", true)

	if cfgFile := os.Getenv("SLIPWAY_CONFIG"); cfgFile != "" {
		// Use config file from the environment.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.slipway")
		viper.SetConfigName(".slipway")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	if params.root.logLevel != "" {
		config.LogLevel = params.root.logLevel
	}
}
