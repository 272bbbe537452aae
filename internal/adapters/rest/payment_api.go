package rest

import (
	"context"
	"net/http"

	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// PaymentAPI implements ports.PaymentAPI.
type PaymentAPI struct {
	client *Client
}

var _ ports.PaymentAPI = (*PaymentAPI)(nil)

// NewPaymentAPI constructs a PaymentAPI on the shared client.
func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

type initializePaymentRequest struct {
	OrderID string `json:"orderId"`
	Method  string `json:"method"`
}

// Initialize starts a payment against an order. Expected shape:
// {"data": {"paymentId": ..., "paymentKey": ...}}. Both fields are required;
// a response missing either fails the commit.
func (a *PaymentAPI) Initialize(ctx context.Context, orderID, method string) (checkout.PaymentIntent, error) {
	resp, err := a.client.do(ctx, http.MethodPost, "/api/payments", initializePaymentRequest{
		OrderID: orderID,
		Method:  method,
	})
	if err != nil {
		return checkout.PaymentIntent{}, err
	}
	if !resp.ok() {
		statusErr := resp.statusError()
		message := statusErr.Message
		if message == "" {
			message = "payment could not be started"
		}
		return checkout.PaymentIntent{}, apperrors.Wrap(statusErr, apperrors.ErrCodePaymentInitialization, message)
	}

	intent, err := decodeData[checkout.PaymentIntent](resp.body)
	if err != nil {
		return checkout.PaymentIntent{}, err
	}
	if intent.PaymentID == "" || intent.PaymentKey == "" {
		return checkout.PaymentIntent{}, apperrors.New(apperrors.ErrCodePaymentInitialization,
			"payment response missing payment id or key")
	}
	return intent, nil
}

type confirmPaymentRequest struct {
	PaymentID  string `json:"paymentId"`
	PaymentKey string `json:"paymentKey"`
}

// Confirm completes a payment started by Initialize.
func (a *PaymentAPI) Confirm(ctx context.Context, intent checkout.PaymentIntent) error {
	resp, err := a.client.do(ctx, http.MethodPost, "/api/payments/confirm", confirmPaymentRequest{
		PaymentID:  intent.PaymentID,
		PaymentKey: intent.PaymentKey,
	})
	if err != nil {
		return err
	}
	if !resp.ok() {
		statusErr := resp.statusError()
		message := statusErr.Message
		if message == "" {
			message = "payment could not be confirmed"
		}
		return apperrors.Wrap(statusErr, apperrors.ErrCodePaymentConfirmation, message)
	}
	return nil
}
