package shopify

// Order is the slice of a Shopify order this bridge reads. TotalPrice stays a
// decimal string until the amount policy converts it to minor units.
type Order struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TotalPrice string `json:"total_price"`
}

// Transaction is the payment record posted against an order once the Gateway
// confirms payment.
type Transaction struct {
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Gateway  string `json:"gateway"`
	Source   string `json:"source"`
	Message  string `json:"message,omitempty"`
}

const (
	TransactionKindSale      = "sale"
	TransactionStatusSuccess = "success"
	// TransactionSourceExternal marks the payment as captured outside Shopify.
	TransactionSourceExternal = "external"
)
