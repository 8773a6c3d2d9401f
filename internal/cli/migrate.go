package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"invoicing-api/internal/database"
)

func newMigrateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage schema migrations",
	}

	manager := func() (*database.MigrationManager, error) {
		cfg, err := opts.config()
		if err != nil {
			return nil, err
		}
		return database.NewMigrationManager(opts.connectionConfig(cfg)), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manager()
			if err != nil {
				return err
			}
			if err := m.Up(); err != nil {
				return err
			}
			return printStatus(cmd, m)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			m, err := manager()
			if err != nil {
				return err
			}
			if err := m.Down(steps); err != nil {
				return err
			}
			return printStatus(cmd, m)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:     "status",
		Aliases: []string{"version"},
		Short:   "Show the current schema version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manager()
			if err != nil {
				return err
			}
			return printStatus(cmd, m)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "force VERSION",
		Short: "Set the schema version without running migrations, clearing the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			m, err := manager()
			if err != nil {
				return err
			}
			if err := m.Force(version); err != nil {
				return err
			}
			return printStatus(cmd, m)
		},
	})

	return cmd
}

func printStatus(cmd *cobra.Command, m *database.MigrationManager) error {
	info, err := m.Status()
	if err != nil {
		return err
	}
	if !info.Applied {
		fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Version: %d\nDirty: %t\n", info.Version, info.Dirty)
	return nil
}
