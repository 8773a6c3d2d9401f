// Package cli implements the invoicing administration command.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"invoicing-api/internal/config"
	"invoicing-api/internal/database"
)

var (
	version = "dev"
	commit  = "none"
)

type options struct {
	driver  string
	dsn     string
	verbose bool

	loadConfig func() (*config.Config, error)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithLoader(config.Load)
}

func newRootCmdWithLoader(load func() (*config.Config, error)) *cobra.Command {
	opts := &options{loadConfig: load}

	cmd := &cobra.Command{
		Use:           "invoicing",
		Short:         "Administer the invoicing database",
		Long:          "invoicing manages schema migrations and imports invoices exported as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.driver, "db-driver", "", "database driver: sqlite3 or pgx (default from DB_DRIVER)")
	cmd.PersistentFlags().StringVar(&opts.dsn, "db", "", "database connection string (default from DB_CONNECTION_STRING)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	return cmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

// config loads the application configuration and applies the command line overrides
func (o *options) config() (*config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	if o.driver != "" {
		cfg.Database.Driver = o.driver
	}
	if o.dsn != "" {
		cfg.Database.ConnectionString = o.dsn
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func (o *options) logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func (o *options) connectionConfig(cfg *config.Config) *database.ConnectionConfig {
	return &database.ConnectionConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.ConnectionString,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Logger:          o.logger(),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "invoicing %s (%s)\n", version, commit)
			return nil
		},
	}
}
