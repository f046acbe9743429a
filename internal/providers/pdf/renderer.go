// Package pdf renders invoices into PDF documents. It is a read-only
// consumer of fully-formed invoice records and imposes no constraints
// back on the core.
package pdf

import (
	"context"
	"io"

	invoicedomain "github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"go.uber.org/fx"
)

// Renderer produces a PDF document from an invoice record.
type Renderer interface {
	RenderInvoice(ctx context.Context, invoice invoicedomain.Invoice) (io.Reader, error)
}

// Module provides the maroto-backed renderer.
var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
