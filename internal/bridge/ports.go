package bridge

import (
	"context"

	"github.com/cinq-ua/monopay-bridge/internal/mono"
	"github.com/cinq-ua/monopay-bridge/internal/shopify"
)

// OrderStore is the port to the Store: read an order, record a transaction.
type OrderStore interface {
	FetchOrder(ctx context.Context, orderID string) (*shopify.Order, error)
	PostTransaction(ctx context.Context, orderID string, tx shopify.Transaction) error
}

// InvoiceGateway is the port to the Gateway's invoice-create endpoint.
type InvoiceGateway interface {
	CreateInvoice(ctx context.Context, inv mono.CreateInvoiceRequest) (*mono.Invoice, error)
}
