package httpx

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cinq-ua/monopay-bridge/internal/bridge"
	"github.com/cinq-ua/monopay-bridge/internal/money"
	"github.com/cinq-ua/monopay-bridge/internal/mono"
)

// Handler exposes the bridge over HTTP: payment initiation for the payer's
// browser and the webhook endpoint for the Gateway.
type Handler struct {
	initiator  *bridge.Initiator
	reconciler *bridge.Reconciler

	// storeDomain only feeds the "my orders" link on the return page.
	storeDomain string
}

func NewHandler(initiator *bridge.Initiator, reconciler *bridge.Reconciler, storeDomain string) *Handler {
	return &Handler{
		initiator:   initiator,
		reconciler:  reconciler,
		storeDomain: storeDomain,
	}
}

// Pay starts a hosted payment and redirects the payer to the payment page.
// Initiation failures are terminal for this attempt; the payer retries by
// hitting /pay again.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}
	mode := money.ParseMode(r.URL.Query().Get("mode"))

	payURL, err := h.initiator.Start(r.Context(), orderID, mode)
	if err != nil {
		slog.ErrorContext(r.Context(), "payment initiation failed", "order_id", orderID, "error", err)
		http.Error(w, "payment initiation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, payURL, http.StatusFound)
}

// Webhook receives Gateway status callbacks. Everything this system cannot
// act on is acknowledged with 200 so the Gateway stops redelivering; only a
// failed Store posting answers 5xx to request redelivery.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	// Webhook payloads carry no delivery id; tag each one for log correlation.
	deliveryID := uuid.NewString()

	var event mono.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		// Redelivering an unparseable body can never succeed; acknowledge it.
		slog.InfoContext(r.Context(), "webhook body not parseable, acknowledging",
			"delivery_id", deliveryID, "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	outcome, err := h.reconciler.Handle(r.Context(), event)
	if err != nil {
		slog.ErrorContext(r.Context(), "webhook reconciliation failed",
			"delivery_id", deliveryID, "invoice_id", event.InvoiceID, "error", err)
		http.Error(w, "transaction recording failed", http.StatusInternalServerError)
		return
	}

	if !outcome.Recorded {
		slog.InfoContext(r.Context(), "webhook ignored",
			"delivery_id", deliveryID, "invoice_id", event.InvoiceID, "reason", outcome.Reason)
	}
	w.WriteHeader(http.StatusOK)
}

// Return renders the thank-you page the payer lands on after the hosted
// payment page. Presentation only; the webhook is the source of truth.
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<html>
  <head><meta charset="utf-8"/></head>
  <body style="font-family:system-ui;padding:24px">
    <h2>Дякуємо! Якщо оплата пройшла, статус замовлення оновиться протягом хвилини.</h2>
    <p><a href="https://%s/account">Мої замовлення</a></p>
  </body>
</html>`, h.storeDomain)
}

// Health answers the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "monopay-bridge OK")
}
