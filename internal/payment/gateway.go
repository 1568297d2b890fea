package payment

import "errors"

// ErrGateway wraps every failure talking to the remote payment provider so
// callers can map it to a 502 without partial state.
var ErrGateway = errors.New("payment gateway error")

// GatewayOrder is the remote payment intent handle returned by CreateOrder.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor currency units
	Currency string
	Receipt  string
}

// Gateway is the boundary to the third-party payment provider. CreateOrder
// registers a payment intent for an amount in minor units (paise) tied back
// to our order number via the receipt. VerifySignature checks the signed
// confirmation the provider hands to the client after payment.
type Gateway interface {
	CreateOrder(amountMinorUnits int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}
