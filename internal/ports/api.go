package ports

// Package ports defines interfaces (hexagonal ports) for the backend API and
// local persistence. Implementations live in internal/adapters; orchestration
// in internal/service.

import (
	"context"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/domain/identity"
)

// LoginInput carries login form values.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput carries shopper registration form values. Registration does not
// authenticate; the caller logs in separately afterward.
type SignupInput struct {
	Email       string
	Password    string
	DisplayName string
	Phone       string
}

// AuthAPI covers both endpoint families (shopper and staff); the kind
// argument selects which. Login returns the extracted bearer token only; the
// caller persists it and resolves the principal separately.
type AuthAPI interface {
	// Login authenticates against the kind-appropriate login endpoint and
	// returns the bearer token extracted from the response header or body.
	Login(ctx context.Context, kind identity.PrincipalKind, in LoginInput) (token string, err error)

	// Logout calls the kind-appropriate logout endpoint.
	Logout(ctx context.Context, kind identity.PrincipalKind) error

	// Self calls the kind-appropriate self-lookup endpoint using the persisted
	// credential and returns the principal fields wholesale.
	Self(ctx context.Context, kind identity.PrincipalKind) (identity.Principal, error)

	// Signup registers a new shopper account.
	Signup(ctx context.Context, in SignupInput) error
}

// ProductQuery filters a paginated product listing.
type ProductQuery struct {
	BrandID string
	Page    int
	Size    int
}

// CatalogAPI reads brands, products and purchasable variants.
type CatalogAPI interface {
	Brands(ctx context.Context) ([]catalog.Brand, error)
	Products(ctx context.Context, q ProductQuery) (catalog.Page[catalog.Product], error)
	Product(ctx context.Context, productID string) (catalog.Product, error)
	Variants(ctx context.Context, productID string) ([]catalog.Variant, error)
}

// CreateOrderInput carries the chosen bid reference and shipping fields.
type CreateOrderInput struct {
	SellingBidID string
	Shipping     checkout.ShippingDraft
}

// OrderAPI creates and reads orders for the current shopper.
type OrderAPI interface {
	// Create creates an order and must yield the new order identifier.
	Create(ctx context.Context, in CreateOrderInput) (checkout.Order, error)

	// Cancel best-effort cancels a pending order (compensation for a failed
	// payment leg).
	Cancel(ctx context.Context, orderID string) error

	ListMine(ctx context.Context, page, size int) (catalog.Page[checkout.Order], error)
	Get(ctx context.Context, orderID string) (checkout.Order, error)
}

// PaymentAPI drives the two payment legs of the purchase commit.
type PaymentAPI interface {
	// Initialize starts a payment against an order and must yield both the
	// payment identifier and the payment authorization key.
	Initialize(ctx context.Context, orderID, method string) (checkout.PaymentIntent, error)

	// Confirm completes the payment started by Initialize.
	Confirm(ctx context.Context, intent checkout.PaymentIntent) error
}

// BidAPI creates and reads selling bids for the current shopper.
type BidAPI interface {
	// Create opens a selling bid for a variant at a price and must yield the
	// new bid identifier.
	Create(ctx context.Context, variantID string, price int64) (checkout.SellingBid, error)

	ListMine(ctx context.Context, page, size int) (catalog.Page[checkout.SellingBid], error)
}
