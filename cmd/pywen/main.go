package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PAMPAS-Lab/Pywen/pkg/logger"
)

func init() {
	viper.SetEnvPrefix("PYWEN")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.pywen")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "pywen",
	Short: "Pywen agent CLI",
	Long:  `Pywen is an LLM-driven agent CLI. This binary hosts the skill discovery subsystem and its management commands.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().Bool("no-skills", false, "Disable skill discovery")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("no_skills", rootCmd.PersistentFlags().Lookup("no-skills"))

	rootCmd.AddCommand(versionCmd)

	ctx := context.Background()
	shutdown, err := initTracing(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("Failed to initialize tracing")
	} else {
		defer shutdown(ctx)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
