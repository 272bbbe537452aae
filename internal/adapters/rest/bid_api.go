package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// BidAPI implements ports.BidAPI.
type BidAPI struct {
	client *Client
}

var _ ports.BidAPI = (*BidAPI)(nil)

// NewBidAPI constructs a BidAPI on the shared client.
func NewBidAPI(client *Client) *BidAPI {
	return &BidAPI{client: client}
}

type createBidRequest struct {
	ProductOptionID string `json:"productOptionId"`
	Price           int64  `json:"price"`
}

// Create opens a selling bid for a variant at a price. Expected shape:
// {"data": bid} or {"data": "<id>"}.
func (a *BidAPI) Create(ctx context.Context, variantID string, price int64) (checkout.SellingBid, error) {
	resp, err := a.client.do(ctx, http.MethodPost, "/api/bids/selling", createBidRequest{
		ProductOptionID: variantID,
		Price:           price,
	})
	if err != nil {
		return checkout.SellingBid{}, err
	}
	if !resp.ok() {
		statusErr := resp.statusError()
		message := statusErr.Message
		if message == "" {
			message = "listing could not be created"
		}
		return checkout.SellingBid{}, apperrors.Wrap(statusErr, apperrors.ErrCodeBidCreation, message)
	}

	if bid, err := decodeData[checkout.SellingBid](resp.body); err == nil && bid.ID != "" {
		return bid, nil
	}
	if id, err := decodeData[string](resp.body); err == nil && id != "" {
		return checkout.SellingBid{ID: id}, nil
	}
	return checkout.SellingBid{}, apperrors.New(apperrors.ErrCodeBidCreation, "bid response missing bid id")
}

// ListMine lists the current shopper's selling bids.
func (a *BidAPI) ListMine(ctx context.Context, page, size int) (catalog.Page[checkout.SellingBid], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}
	path := "/api/bids/selling/me"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := a.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return catalog.Page[checkout.SellingBid]{}, err
	}
	if !resp.ok() {
		return catalog.Page[checkout.SellingBid]{}, resp.statusError()
	}
	return decodePage[checkout.SellingBid](resp.body)
}
