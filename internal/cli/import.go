package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicing-api/internal/migration"
	"invoicing-api/pkg/server"
)

func newImportCmd(opts *options) *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import invoices from a JSON file",
		Long: "Import invoices from a JSON array or a file with one invoice per line.\n" +
			"Companies are matched by tax identification number. Invoices whose number\n" +
			"already exists are skipped; any other error rolls the whole import back.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			cfg.Database.AutoMigrate = true

			container, err := server.NewContainer(cfg)
			if err != nil {
				return err
			}
			defer container.Close()

			importer := migration.NewJSONImporter(container.Repositories(), container.Services.InvoiceService, container.Logger)
			result, err := importer.ImportFile(cmd.Context(), file, dryRun)
			if err != nil {
				return err
			}

			if result.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run, nothing was stored")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invoices read: %d\nInvoices imported: %d\nInvoices skipped: %d\n",
				result.InvoicesRead, result.InvoicesImported, result.InvoicesSkipped)
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s\n", w)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file to import")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "import inside a transaction and roll it back")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("mark file flag: %v", err))
	}
	return cmd
}
