// Package bridge holds the two orchestrators of the payment flow: the
// Initiator drives hosted-payment creation, the Reconciler applies webhook
// outcomes back to the Store. They share no state; every invocation is
// self-contained so the bridge survives ephemeral execution environments.
package bridge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cinq-ua/monopay-bridge/internal/config"
	"github.com/cinq-ua/monopay-bridge/internal/money"
	"github.com/cinq-ua/monopay-bridge/internal/mono"
	"github.com/cinq-ua/monopay-bridge/internal/reference"
)

// Initiator runs the payment-initiation flow: fetch order, compute the
// payable amount, create a Gateway invoice, hand back the pay URL.
type Initiator struct {
	store   OrderStore
	gateway InvoiceGateway
	codec   *reference.Codec
	cfg     *config.Config
}

func NewInitiator(store OrderStore, gateway InvoiceGateway, codec *reference.Codec, cfg *config.Config) *Initiator {
	return &Initiator{
		store:   store,
		gateway: gateway,
		codec:   codec,
		cfg:     cfg,
	}
}

// Start returns the Gateway pay URL for the given order. Each step aborts the
// flow on failure; nothing is persisted, so there is no partial state to
// clean up and the payer simply retries via /pay.
func (i *Initiator) Start(ctx context.Context, orderID string, mode money.Mode) (string, error) {
	order, err := i.store.FetchOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	totalMinor, err := money.ToMinorUnits(order.TotalPrice)
	if err != nil {
		return "", fmt.Errorf("order %s total %q: %w", orderID, order.TotalPrice, err)
	}
	payMinor := money.ComputePayable(totalMinor, mode, i.cfg.DepositPercent)

	ref := i.codec.Encode(order.ID)

	invoice, err := i.gateway.CreateInvoice(ctx, mono.CreateInvoiceRequest{
		Amount: payMinor,
		Ccy:    i.cfg.CurrencyNumeric,
		MerchantPaymInfo: mono.MerchantPaymInfo{
			Reference:   ref,
			Destination: description(order.Name, mode),
		},
		RedirectURL: fmt.Sprintf("%s/mono/return?order_id=%d", i.cfg.AppBaseURL, order.ID),
		WebHookURL:  i.cfg.AppBaseURL + "/mono/webhook",
		Validity:    int64(i.cfg.InvoiceValidity.Seconds()),
	})
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "invoice created",
		"order_id", order.ID,
		"invoice_id", invoice.InvoiceID,
		"amount_minor", payMinor,
		"mode", string(mode),
	)
	return invoice.PageURL, nil
}

// description builds the payer-facing purpose line shown on the payment page.
func description(orderName string, mode money.Mode) string {
	kind := "повна"
	if mode == money.ModeDeposit {
		kind = "передоплата"
	}
	return fmt.Sprintf("Оплата замовлення #%s (%s)", orderName, kind)
}
