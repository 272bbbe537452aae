package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// CatalogAPI implements ports.CatalogAPI.
type CatalogAPI struct {
	client *Client
}

var _ ports.CatalogAPI = (*CatalogAPI)(nil)

// NewCatalogAPI constructs a CatalogAPI on the shared client.
func NewCatalogAPI(client *Client) *CatalogAPI {
	return &CatalogAPI{client: client}
}

// Brands lists all brands. Expected shape: {"data": [brand]} or a bare array.
func (a *CatalogAPI) Brands(ctx context.Context) ([]catalog.Brand, error) {
	resp, err := a.client.do(ctx, http.MethodGet, "/api/brands", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.statusError()
	}
	return decodeList[catalog.Brand](resp.body)
}

// Products lists products, optionally filtered by brand. Expected shape:
// {"data": {"content": [product], ...}} or the page at the top level.
func (a *CatalogAPI) Products(ctx context.Context, q ports.ProductQuery) (catalog.Page[catalog.Product], error) {
	params := url.Values{}
	if q.BrandID != "" {
		params.Set("brandId", q.BrandID)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := a.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return catalog.Page[catalog.Product]{}, err
	}
	if !resp.ok() {
		return catalog.Page[catalog.Product]{}, resp.statusError()
	}
	return decodePage[catalog.Product](resp.body)
}

// Product fetches one product by id. Expected shape: {"data": product}.
func (a *CatalogAPI) Product(ctx context.Context, productID string) (catalog.Product, error) {
	resp, err := a.client.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID), nil)
	if err != nil {
		return catalog.Product{}, err
	}
	if !resp.ok() {
		return catalog.Product{}, resp.statusError()
	}
	product, err := decodeData[catalog.Product](resp.body)
	if err != nil {
		return catalog.Product{}, err
	}
	if product.ID == "" {
		return catalog.Product{}, apperrors.New(apperrors.ErrCodeDecode, "product payload missing id")
	}
	return product, nil
}

// Variants lists the purchasable options of a product, each with its current
// lowest ask price or null. Expected shape: {"data": [variant]}.
func (a *CatalogAPI) Variants(ctx context.Context, productID string) ([]catalog.Variant, error) {
	resp, err := a.client.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID)+"/options", nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.statusError()
	}
	return decodeList[catalog.Variant](resp.body)
}
