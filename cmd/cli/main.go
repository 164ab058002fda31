package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TheViking816/DescansosCPE/cmd/cli/commands"
	"github.com/TheViking816/DescansosCPE/internal/config"
	"github.com/TheViking816/DescansosCPE/pkg/postgres"
	"github.com/TheViking816/DescansosCPE/pkg/usage"
	"github.com/TheViking816/DescansosCPE/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "descansos",
		Short: "DescansosCPE CLI - Rest-day swap board for port shift workers",
		Long:  `A CLI tool for publishing rest-day swap offers, browsing the ranked board and finding reciprocal matches.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.BoardCmd(appRef()))
	rootCmd.AddCommand(commands.WatchCmd(appRef()))
	rootCmd.AddCommand(commands.MatchesCmd(appRef()))
	rootCmd.AddCommand(commands.SubmitOfferCmd(appRef()))
	rootCmd.AddCommand(commands.MyOffersCmd(appRef()))
	rootCmd.AddCommand(commands.EditOfferCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteOfferCmd(appRef()))
	rootCmd.AddCommand(commands.ListWorkersCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty here and filled
// in by initApp once flags are parsed.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up logger, config, policy, database and usage tracking
func initApp() error {
	var err error
	appRef()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Policy, err = app.Cfg.Policy()
	if err != nil {
		return fmt.Errorf("failed to build validation policy: %w", err)
	}
	app.Logger.Debug("Validation policy built",
		zap.Bool("enforce_quota_rules", app.Policy.EnforceQuotaRules),
		zap.Int("blackout_periods", len(app.Policy.Blackouts)))

	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Info("Database initialized successfully")

	app.Usage = usage.NewTracker(database, usage.NewThrottle(app.Cfg.UsagePingInterval()), app.Cfg.ExcludedBadges)

	return nil
}
