package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// OrderAPI implements ports.OrderAPI.
type OrderAPI struct {
	client *Client
}

var _ ports.OrderAPI = (*OrderAPI)(nil)

// NewOrderAPI constructs an OrderAPI on the shared client.
func NewOrderAPI(client *Client) *OrderAPI {
	return &OrderAPI{client: client}
}

type createOrderRequest struct {
	SellingBidID  string `json:"sellingBidId"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	ZipCode       string `json:"zipCode"`
	Address       string `json:"address"`
	AddressDetail string `json:"addressDetail"`
}

// Create creates an order for a selling bid with the given shipping fields.
// Expected shape: {"data": order} with an object carrying the new id, or
// {"data": "<id>"} on endpoints that return the bare identifier. A response
// with no extractable order id fails the whole commit.
func (a *OrderAPI) Create(ctx context.Context, in ports.CreateOrderInput) (checkout.Order, error) {
	req := createOrderRequest{
		SellingBidID:  in.SellingBidID,
		ReceiverName:  in.Shipping.ReceiverName,
		ReceiverPhone: in.Shipping.ReceiverPhone,
		ZipCode:       in.Shipping.ZipCode,
		Address:       in.Shipping.Address,
		AddressDetail: in.Shipping.AddressDetail,
	}

	resp, err := a.client.do(ctx, http.MethodPost, "/api/orders", req,
		withHeader("Idempotency-Key", uuid.NewString()))
	if err != nil {
		return checkout.Order{}, err
	}
	if !resp.ok() {
		statusErr := resp.statusError()
		message := statusErr.Message
		if message == "" {
			message = "order could not be created"
		}
		return checkout.Order{}, apperrors.Wrap(statusErr, apperrors.ErrCodeOrderCreation, message)
	}

	order, err := decodeCreatedOrder(resp.body)
	if err != nil {
		return checkout.Order{}, err
	}
	return order, nil
}

// decodeCreatedOrder accepts either an order object or a bare id string under
// the data envelope.
func decodeCreatedOrder(body []byte) (checkout.Order, error) {
	if order, err := decodeData[checkout.Order](body); err == nil && order.ID != "" {
		return order, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelopePresent(envelope.Data) {
		var id string
		if err := json.Unmarshal(envelope.Data, &id); err == nil && id != "" {
			return checkout.Order{ID: id}, nil
		}
	}

	return checkout.Order{}, apperrors.New(apperrors.ErrCodeOrderCreation, "order response missing order id")
}

// Cancel cancels a pending order. Used as best-effort compensation when a
// payment leg fails after the order was created.
func (a *OrderAPI) Cancel(ctx context.Context, orderID string) error {
	resp, err := a.client.do(ctx, http.MethodPost, "/api/orders/"+url.PathEscape(orderID)+"/cancel", nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.statusError()
	}
	return nil
}

// ListMine lists the current shopper's orders.
func (a *OrderAPI) ListMine(ctx context.Context, page, size int) (catalog.Page[checkout.Order], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}
	path := "/api/orders"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := a.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return catalog.Page[checkout.Order]{}, err
	}
	if !resp.ok() {
		return catalog.Page[checkout.Order]{}, resp.statusError()
	}
	return decodePage[checkout.Order](resp.body)
}

// Get fetches one order by id.
func (a *OrderAPI) Get(ctx context.Context, orderID string) (checkout.Order, error) {
	resp, err := a.client.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return checkout.Order{}, err
	}
	if !resp.ok() {
		return checkout.Order{}, resp.statusError()
	}
	order, err := decodeData[checkout.Order](resp.body)
	if err != nil {
		return checkout.Order{}, err
	}
	if order.ID == "" {
		return checkout.Order{}, apperrors.New(apperrors.ErrCodeDecode, "order payload missing id")
	}
	return order, nil
}
