package shopify

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is returned when the Store answers 404 for an order id.
	ErrOrderNotFound = errors.New("shopify: order not found")

	// ErrStoreUnavailable covers every other non-success order read.
	ErrStoreUnavailable = errors.New("shopify: store unavailable")

	// ErrTransactionRejected is returned when a transaction create fails.
	ErrTransactionRejected = errors.New("shopify: transaction rejected")
)

// APIError carries the upstream status and body for diagnostics. It always
// wraps one of the sentinel errors above, so call sites branch with errors.Is
// and surface the body with errors.As.
type APIError struct {
	Kind       error
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: upstream status %d: %s", e.Kind, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return e.Kind }
