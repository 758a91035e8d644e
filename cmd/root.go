package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/autosized/cmd/fit"
	"github.com/Manu343726/autosized/cmd/tools"
	"github.com/fatih/color"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string
	noColor bool
)

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "autosized",
	Short: "Pick the smallest integer type that fits a literal",
	Long: `Autosized determines, for a given integer literal, the narrowest fixed width
integer representation (u8/u16/u32/u64/u128 or i8/i16/i32/i64/i128) that holds
the value without overflow, and emits either the type designator or the
literal re-expressed as a value of that type.

This CLI is the entry point for the autosized toolkit, providing access to the
width selector, the ladder documentation, etc`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(fit.FitCmd, tools.ToolsCmd)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.autosized.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "mirror logs as JSON lines into the given file")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	cobra.OnInitialize(initConfig, initLogging)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("emit.value", false)
	viper.SetDefault("color", true)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".autosized" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".autosized")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if noColor || !viper.GetBool("color") {
		color.NoColor = true
	}
}

// initLogging installs the default slog logger: human readable text on
// stderr, optionally fanned out as JSON lines into --log-file.
func initLogging() {
	level := slog.LevelWarn

	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		cobra.CheckErr(err)

		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}
