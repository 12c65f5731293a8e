package mono

import "strings"

// CreateInvoiceRequest is the merchant invoice-create payload. Amount is in
// minor units (kopecks), Ccy is the ISO 4217 numeric currency code.
type CreateInvoiceRequest struct {
	Amount           int64            `json:"amount"`
	Ccy              int              `json:"ccy"`
	MerchantPaymInfo MerchantPaymInfo `json:"merchantPaymInfo"`
	RedirectURL      string           `json:"redirectUrl"`
	WebHookURL       string           `json:"webHookUrl"`
	Validity         int64            `json:"validity"`
}

// MerchantPaymInfo carries the correlation reference through the Gateway and
// back out of every webhook for that invoice.
type MerchantPaymInfo struct {
	Reference   string `json:"reference"`
	Destination string `json:"destination,omitempty"`
}

// Invoice is the slice of the invoice-create response the bridge reads.
// Everything else about the invoice is learned via the webhook.
type Invoice struct {
	InvoiceID string `json:"invoiceId"`
	PageURL   string `json:"pageUrl"`
}

// WebhookEvent is the asynchronous status callback. The Gateway may deliver
// the same event more than once.
type WebhookEvent struct {
	InvoiceID        string           `json:"invoiceId"`
	Status           string           `json:"status"`
	Amount           int64            `json:"amount"`
	MerchantPaymInfo MerchantPaymInfo `json:"merchantPaymInfo"`
}

// effectiveStatuses are the Gateway lifecycle states meaning money has moved
// or is reserved. Anything else is acknowledged and ignored.
var effectiveStatuses = map[string]struct{}{
	"success":   {},
	"hold":      {},
	"approved":  {},
	"processed": {},
}

// Effective reports whether this event's status means the payment took effect.
func (e WebhookEvent) Effective() bool {
	_, ok := effectiveStatuses[strings.ToLower(e.Status)]
	return ok
}
