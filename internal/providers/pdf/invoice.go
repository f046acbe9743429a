package pdf

import (
	"bytes"
	"context"
	"io"
	"os"

	appconfig "github.com/StarickDosSantos/FactBP/internal/config"
	"github.com/StarickDosSantos/FactBP/internal/format"
	"github.com/StarickDosSantos/FactBP/internal/invoice/calc"
	invoicedomain "github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type marotoRenderer struct {
	invoiceCfg *appconfig.InvoiceConfigHolder
}

func New(invoiceCfg *appconfig.InvoiceConfigHolder) Renderer {
	return &marotoRenderer{invoiceCfg: invoiceCfg}
}

func (r *marotoRenderer) RenderInvoice(ctx context.Context, invoice invoicedomain.Invoice) (io.Reader, error) {
	defaults := r.invoiceCfg.Get()
	currency := defaults.CurrencySuffix

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if invoice.LogoURI != "" {
		if _, err := os.Stat(invoice.LogoURI); err == nil {
			m.AddRow(30,
				image.NewFromFileCol(3, invoice.LogoURI, props.Rect{
					Center:  false,
					Percent: 80,
				}),
				col.New(9),
			)
		}
	}

	m.AddRow(12,
		text.NewCol(12, "Factura", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Cliente: "+invoice.Customer, props.Text{Size: 11, Style: fontstyle.Bold}),
			text.New("Data: "+format.Date(invoice.IssuedAt), props.Text{Top: 6, Size: 10}),
		),
		col.New(6).Add(
			text.New(defaults.CompanyName, props.Text{Size: 10, Align: align.Right}),
			text.New(defaults.CompanyAddress, props.Text{Top: 5, Size: 9, Align: align.Right}),
			text.New(defaults.CompanyPhone, props.Text{Top: 10, Size: 9, Align: align.Right}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(6, "Produto", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qtd", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Preço", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range invoice.Items {
		m.AddRow(8,
			text.NewCol(6, item.Name, props.Text{Size: 9}),
			text.NewCol(2, format.Number(item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Currency(item.Price, currency), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Currency(calc.LineTotal(item), currency), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(2, line.NewCol(12))

	taxAmount := calc.TaxAmount(invoice.Subtotal, invoice.TaxPercent)
	discountAmount := calc.DiscountAmount(invoice.Subtotal, invoice.DiscountPercent)

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, format.Currency(invoice.Subtotal, currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Imposto ("+format.Percent(invoice.TaxPercent)+")", props.Text{Size: 9}),
		text.NewCol(2, format.Currency(taxAmount, currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Desconto ("+format.Percent(invoice.DiscountPercent)+")", props.Text{Size: 9}),
		text.NewCol(2, format.Currency(discountAmount, currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total Final", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, format.Currency(invoice.Total, currency), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
