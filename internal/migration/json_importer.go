// Package migration imports invoices kept in JSON files into the database.
package migration

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/repositories"
	"invoicing-api/internal/services"
)

// errDryRun rolls back the import transaction on dry runs
var errDryRun = errors.New("dry run")

// ImportResult contains the results of an import
type ImportResult struct {
	InvoicesRead     int
	InvoicesImported int
	InvoicesSkipped  int
	Warnings         []string
	DryRun           bool
}

// JSONImporter loads invoices exported as JSON into the database.
// Companies are matched by tax identification number and created when unknown.
type JSONImporter struct {
	repos    repositories.RepositoryManager
	invoices services.InvoiceService
	logger   *logrus.Logger
}

// NewJSONImporter creates a new importer
func NewJSONImporter(repos repositories.RepositoryManager, invoices services.InvoiceService, logger *logrus.Logger) *JSONImporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &JSONImporter{repos: repos, invoices: invoices, logger: logger}
}

// ReadInvoices decodes either a JSON array of invoices or a stream of invoice
// objects, one per line, as written by the file based database.
func ReadInvoices(r io.Reader) ([]dto.InvoiceDto, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var invoices []dto.InvoiceDto
		if err := dec.Decode(&invoices); err != nil {
			return nil, fmt.Errorf("failed to decode invoice array: %w", err)
		}
		return invoices, nil
	}

	var invoices []dto.InvoiceDto
	for dec.More() {
		var invoice dto.InvoiceDto
		if err := dec.Decode(&invoice); err != nil {
			return nil, fmt.Errorf("failed to decode invoice %d: %w", len(invoices)+1, err)
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// ImportFile imports every invoice in path within a single transaction.
// Invoices whose number already exists are skipped with a warning; any other
// failure rolls the whole import back. A dry run performs the import and
// rolls it back.
func (i *JSONImporter) ImportFile(ctx context.Context, path string, dryRun bool) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	invoices, err := ReadInvoices(f)
	if err != nil {
		return nil, err
	}
	return i.Import(ctx, invoices, dryRun)
}

// Import stores invoices within a single transaction
func (i *JSONImporter) Import(ctx context.Context, invoices []dto.InvoiceDto, dryRun bool) (*ImportResult, error) {
	i.logger.WithFields(logrus.Fields{
		"count":   len(invoices),
		"dry_run": dryRun,
	}).Info("Starting invoice import")

	var result *ImportResult
	err := i.repos.WithTransaction(ctx, func(ctx context.Context) error {
		result = &ImportResult{InvoicesRead: len(invoices), DryRun: dryRun}

		for n := range invoices {
			invoice := &invoices[n]
			_, err := i.repos.Invoices().GetByNumber(ctx, invoice.Number)
			switch {
			case err == nil:
				result.InvoicesSkipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("invoice %s already exists, skipped", invoice.Number))
				i.logger.WithField("number", invoice.Number).Warn("Invoice already exists, skipping")
				continue
			case !repositories.IsNotFound(err):
				return err
			}

			if _, err := i.invoices.CreateInvoice(ctx, invoice); err != nil {
				return fmt.Errorf("invoice %d (%s): %w", n+1, invoice.Number, err)
			}
			result.InvoicesImported++
		}

		if dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, fmt.Errorf("import failed: %w", err)
	}

	i.logger.WithFields(logrus.Fields{
		"imported": result.InvoicesImported,
		"skipped":  result.InvoicesSkipped,
		"dry_run":  dryRun,
	}).Info("Invoice import finished")
	return result, nil
}
