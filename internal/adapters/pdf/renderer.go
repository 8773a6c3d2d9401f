// Package pdf renders invoices as A4 PDF documents.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"invoicing-api/internal/models"
)

var (
	colorPrimary = &props.Color{Red: 33, Green: 64, Blue: 110}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// InvoiceRenderer turns an invoice into PDF bytes
type InvoiceRenderer interface {
	Render(ctx context.Context, invoice *models.Invoice) ([]byte, error)
}

// MarotoRenderer renders invoices with maroto
type MarotoRenderer struct {
	printer *message.Printer
}

// NewMarotoRenderer creates a renderer formatting amounts for the given locale
func NewMarotoRenderer(tag language.Tag) *MarotoRenderer {
	return &MarotoRenderer{printer: message.NewPrinter(tag)}
}

// NewDefaultRenderer formats amounts the Polish way
func NewDefaultRenderer() *MarotoRenderer {
	return NewMarotoRenderer(language.Polish)
}

// Render implements InvoiceRenderer
func (r *MarotoRenderer) Render(ctx context.Context, invoice *models.Invoice) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("pdf: invoice is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		WithAuthor(invoice.Seller.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(r.entryRows(invoice.Entries)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(r.totalsRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *MarotoRenderer) headerRow(invoice *models.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(invoice.Seller.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIP: "+invoice.Seller.TaxIdentificationNumber, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+invoice.Date.Format(models.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partiesRow(invoice *models.Invoice) core.Row {
	party := func(title string, c models.Company) core.Col {
		return col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(c.Address, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("NIP: "+c.TaxIdentificationNumber, props.Text{Size: 8, Top: 17, Color: colorGray}),
		)
	}
	return row.New(24).Add(
		party("SELLER", invoice.Seller),
		party("BUYER", invoice.Buyer),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Description", 4, align.Left),
		h("Qty", 1, align.Center),
		h("Net", 2, align.Right),
		h("VAT", 1, align.Center),
		h("VAT value", 1, align.Right),
		h("Gross", 2, align.Right),
	)
}

func (r *MarotoRenderer) entryRows(entries []models.InvoiceEntry) []core.Row {
	rows := make([]core.Row, 0, len(entries))
	for i, e := range entries {
		description := e.Description
		if e.Car != nil {
			description += " (" + e.Car.RegistrationNumber + ")"
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		rows = append(rows, row.New(7).Add(
			cell(fmt.Sprint(i+1), 1, align.Center),
			cell(description, 4, align.Left),
			cell(e.Quantity.String(), 1, align.Center),
			cell(r.Amount(e.NetPrice), 2, align.Right),
			cell(e.VatRate.Percent(), 1, align.Center),
			cell(r.Amount(e.VatValue), 1, align.Right),
			cell(r.Amount(e.GrossPrice()), 2, align.Right),
		))
	}
	return rows
}

func (r *MarotoRenderer) totalsRow(invoice *models.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Net total:"),
			text.New("VAT total:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 12, Color: colorPrimary}),
		),
		col.New(3).Add(
			value(r.Amount(invoice.NetTotal()), 0),
			value(r.Amount(invoice.VatTotal()), 6),
			text.New(r.Amount(invoice.GrossTotal()), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 12, Color: colorPrimary,
			}),
		),
	)
}

// Amount formats a money value with two decimals and locale grouping
func (r *MarotoRenderer) Amount(v decimal.Decimal) string {
	return r.printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}
