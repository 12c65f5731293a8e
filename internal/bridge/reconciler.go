package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cinq-ua/monopay-bridge/internal/config"
	"github.com/cinq-ua/monopay-bridge/internal/money"
	"github.com/cinq-ua/monopay-bridge/internal/mono"
	"github.com/cinq-ua/monopay-bridge/internal/pkg/cache"
	"github.com/cinq-ua/monopay-bridge/internal/reference"
	"github.com/cinq-ua/monopay-bridge/internal/shopify"
)

// Outcome reports how a webhook event was handled. Ignored events are still
// acknowledged to the Gateway; only a failed Store posting is an error.
type Outcome struct {
	Recorded bool
	Reason   string
	OrderID  int64
}

// seenTTL bounds how long a recorded invoiceId:status pair suppresses
// redeliveries. Gateway redelivery windows are far shorter than a week.
const seenTTL = 7 * 24 * time.Hour

// Reconciler applies webhook events to the Store. seen may be nil — then
// every effective delivery posts a transaction, duplicates included, exactly
// as the upstream contract allows.
type Reconciler struct {
	store OrderStore
	codec *reference.Codec
	seen  cache.SeenStore
	cfg   *config.Config
}

func NewReconciler(store OrderStore, codec *reference.Codec, seen cache.SeenStore, cfg *config.Config) *Reconciler {
	return &Reconciler{
		store: store,
		codec: codec,
		seen:  seen,
		cfg:   cfg,
	}
}

// Handle runs the reconciliation flow for one delivery. A reference that does
// not decode or a status outside the effective set is an expected condition:
// the event is ignored, not failed. Only a Store posting failure returns an
// error, so the HTTP layer can answer 5xx and let the Gateway redeliver.
func (r *Reconciler) Handle(ctx context.Context, event mono.WebhookEvent) (Outcome, error) {
	orderID, ok := r.codec.Decode(event.MerchantPaymInfo.Reference)
	if !ok {
		slog.InfoContext(ctx, "webhook reference not recognized, acknowledging",
			"reference", event.MerchantPaymInfo.Reference)
		return Outcome{Reason: "unrecognized reference"}, nil
	}

	if !event.Effective() {
		slog.InfoContext(ctx, "webhook status not effective, acknowledging",
			"order_id", orderID, "status", event.Status)
		return Outcome{Reason: "non-effective status", OrderID: orderID}, nil
	}

	seenKey := event.InvoiceID + ":" + strings.ToLower(event.Status)
	if r.seen != nil {
		first, err := r.seen.MarkSeen(ctx, seenKey, seenTTL)
		if err != nil {
			// Best effort: a broken guard must not block reconciliation.
			slog.WarnContext(ctx, "seen-event guard unavailable", "error", err)
		} else if !first {
			slog.InfoContext(ctx, "duplicate webhook delivery, acknowledging",
				"order_id", orderID, "invoice_id", event.InvoiceID, "status", event.Status)
			return Outcome{Reason: "duplicate delivery", OrderID: orderID}, nil
		}
	}

	tx := shopify.Transaction{
		Kind:     shopify.TransactionKindSale,
		Status:   shopify.TransactionStatusSuccess,
		Amount:   money.ToDecimalString(event.Amount),
		Currency: r.cfg.Currency,
		Gateway:  r.cfg.GatewayName,
		Source:   shopify.TransactionSourceExternal,
		Message:  "Mono invoice " + event.InvoiceID,
	}

	if err := r.store.PostTransaction(ctx, strconv.FormatInt(orderID, 10), tx); err != nil {
		if r.seen != nil {
			// Unmark so the Gateway's redelivery is not suppressed.
			if forgetErr := r.seen.Forget(ctx, seenKey); forgetErr != nil {
				slog.WarnContext(ctx, "failed to unmark webhook event", "error", forgetErr)
			}
		}
		return Outcome{OrderID: orderID}, fmt.Errorf("recording transaction for order %d: %w", orderID, err)
	}

	slog.InfoContext(ctx, "transaction recorded",
		"order_id", orderID, "invoice_id", event.InvoiceID, "amount", tx.Amount)
	return Outcome{Recorded: true, OrderID: orderID}, nil
}
