package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by every subcommand once configuration is loaded.
type app struct {
	v        *viper.Viper
	settings *config.Settings
	logger   *slog.Logger
	clock    func() time.Time
	cfgFile  string
	now      string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), clock: time.Now}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "💳 Card statement reports",
		Long: `ledger reads an exported bank-card statement and reports where the money went:
spend per category, per day of week, weekday versus weekend, cashback per card,
and searches for phone payments and transfers to private persons.

Transactions are read as a JSON array of rows from --input (default: stdin).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/ledger/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringP("input", "i", "-", "statement rows as a JSON array, - for stdin")
	rootCmd.PersistentFlags().String("fields", "", "row schema (english, operations, payments)")
	rootCmd.PersistentFlags().StringVar(&a.now, "now", "", "current time as 'YYYY-MM-DD HH:MM:SS' (default: wall clock)")

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyInput, rootCmd.PersistentFlags().Lookup("input"))

	// Add commands
	rootCmd.AddCommand(a.reportCmd())
	rootCmd.AddCommand(a.cardsCmd())
	rootCmd.AddCommand(a.searchCmd())
	rootCmd.AddCommand(a.overviewCmd())
	rootCmd.AddCommand(a.insightsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		a.v.AddConfigPath(fmt.Sprintf("%s/.config/ledger", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("LEDGER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if fields, _ := cmd.Flags().GetString("fields"); fields != "" {
		a.v.Set(config.KeyFields, fields)
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	a.settings = settings

	level, err := common.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger, err := common.SetupLogger(cmd.ErrOrStderr(), level, settings.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logger = logger

	return nil
}

// currentTime returns --now, or the wall clock read as a naive timestamp so it
// compares with statement dates the same way.
func (a *app) currentTime() (time.Time, error) {
	if a.now == "" {
		wall := a.clock()
		return time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, time.UTC), nil
	}
	now, err := time.Parse(nowLayout, a.now)
	if err != nil {
		return time.Time{}, common.NewUserError("--now must look like 2021-12-31 16:44:00", err)
	}
	return now, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ledger %s\n", version)
		},
	}
}
