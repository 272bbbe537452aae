package checkout

// Order is a created order as returned by the order endpoints.
type Order struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// PaymentIntent is the result of initializing a payment against an order:
// the payment identifier plus the authorization key the confirm call needs.
type PaymentIntent struct {
	PaymentID  string `json:"paymentId"`
	PaymentKey string `json:"paymentKey"`
}

// SellingBid is an open ask created by the listing wizard.
type SellingBid struct {
	ID        string `json:"id"`
	VariantID string `json:"productOptionId,omitempty"`
	Price     int64  `json:"price,omitempty"`
	Status    string `json:"status,omitempty"`
}
