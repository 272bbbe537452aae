package backend

// Package backend contains simple hand-written test doubles for the API and
// store ports. These are lightweight and suitable for unit tests without
// codegen.

import (
	"context"
	"sync"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/domain/identity"
	"github.com/relaymarket/relay-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI    = (*MockAuthAPI)(nil)
	_ ports.CatalogAPI = (*MockCatalogAPI)(nil)
	_ ports.OrderAPI   = (*MockOrderAPI)(nil)
	_ ports.PaymentAPI = (*MockPaymentAPI)(nil)
	_ ports.BidAPI     = (*MockBidAPI)(nil)
	_ ports.StateStore = (*MemoryStateStore)(nil)
)

// MockAuthAPI simulates the auth endpoint families with per-call overrides.
type MockAuthAPI struct {
	LoginFunc  func(ctx context.Context, kind identity.PrincipalKind, in ports.LoginInput) (string, error)
	LogoutFunc func(ctx context.Context, kind identity.PrincipalKind) error
	SelfFunc   func(ctx context.Context, kind identity.PrincipalKind) (identity.Principal, error)
	SignupFunc func(ctx context.Context, in ports.SignupInput) error

	// Call counters for asserting call discipline.
	LoginCalls  int
	LogoutCalls int
	SelfCalls   int
	SignupCalls int
}

func (m *MockAuthAPI) Login(ctx context.Context, kind identity.PrincipalKind, in ports.LoginInput) (string, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, kind, in)
	}
	return "token-" + string(kind), nil
}

func (m *MockAuthAPI) Logout(ctx context.Context, kind identity.PrincipalKind) error {
	m.LogoutCalls++
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, kind)
	}
	return nil
}

func (m *MockAuthAPI) Self(ctx context.Context, kind identity.PrincipalKind) (identity.Principal, error) {
	m.SelfCalls++
	if m.SelfFunc != nil {
		return m.SelfFunc(ctx, kind)
	}
	p := identity.Principal{ID: "u1", Email: "user@example.com", DisplayName: "User"}
	if kind == identity.KindStaff {
		p.StaffRole = identity.RoleMaster
	}
	return p, nil
}

func (m *MockAuthAPI) Signup(ctx context.Context, in ports.SignupInput) error {
	m.SignupCalls++
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return nil
}

// MockCatalogAPI serves fixed catalog data unless overridden.
type MockCatalogAPI struct {
	BrandsFunc   func(ctx context.Context) ([]catalog.Brand, error)
	ProductsFunc func(ctx context.Context, q ports.ProductQuery) (catalog.Page[catalog.Product], error)
	ProductFunc  func(ctx context.Context, productID string) (catalog.Product, error)
	VariantsFunc func(ctx context.Context, productID string) ([]catalog.Variant, error)

	BrandList   []catalog.Brand
	ProductList []catalog.Product
	VariantList []catalog.Variant

	VariantsCalls int
}

func (m *MockCatalogAPI) Brands(ctx context.Context) ([]catalog.Brand, error) {
	if m.BrandsFunc != nil {
		return m.BrandsFunc(ctx)
	}
	return m.BrandList, nil
}

func (m *MockCatalogAPI) Products(ctx context.Context, q ports.ProductQuery) (catalog.Page[catalog.Product], error) {
	if m.ProductsFunc != nil {
		return m.ProductsFunc(ctx, q)
	}
	return catalog.Page[catalog.Product]{Content: m.ProductList, TotalElements: len(m.ProductList), TotalPages: 1}, nil
}

func (m *MockCatalogAPI) Product(ctx context.Context, productID string) (catalog.Product, error) {
	if m.ProductFunc != nil {
		return m.ProductFunc(ctx, productID)
	}
	for _, p := range m.ProductList {
		if p.ID == productID {
			return p, nil
		}
	}
	return catalog.Product{ID: productID, Name: "Product " + productID}, nil
}

func (m *MockCatalogAPI) Variants(ctx context.Context, productID string) ([]catalog.Variant, error) {
	m.VariantsCalls++
	if m.VariantsFunc != nil {
		return m.VariantsFunc(ctx, productID)
	}
	return m.VariantList, nil
}

// MockOrderAPI records created orders.
type MockOrderAPI struct {
	CreateFunc   func(ctx context.Context, in ports.CreateOrderInput) (checkout.Order, error)
	CancelFunc   func(ctx context.Context, orderID string) error
	ListMineFunc func(ctx context.Context, page, size int) (catalog.Page[checkout.Order], error)
	GetFunc      func(ctx context.Context, orderID string) (checkout.Order, error)

	CreateCalls int
	CancelCalls int
	Canceled    []string
}

func (m *MockOrderAPI) Create(ctx context.Context, in ports.CreateOrderInput) (checkout.Order, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return checkout.Order{ID: "order-1"}, nil
}

func (m *MockOrderAPI) Cancel(ctx context.Context, orderID string) error {
	m.CancelCalls++
	m.Canceled = append(m.Canceled, orderID)
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, orderID)
	}
	return nil
}

func (m *MockOrderAPI) ListMine(ctx context.Context, page, size int) (catalog.Page[checkout.Order], error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, page, size)
	}
	return catalog.Page[checkout.Order]{Content: []checkout.Order{}}, nil
}

func (m *MockOrderAPI) Get(ctx context.Context, orderID string) (checkout.Order, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, orderID)
	}
	return checkout.Order{ID: orderID}, nil
}

// MockPaymentAPI simulates the two payment legs.
type MockPaymentAPI struct {
	InitializeFunc func(ctx context.Context, orderID, method string) (checkout.PaymentIntent, error)
	ConfirmFunc    func(ctx context.Context, intent checkout.PaymentIntent) error

	InitializeCalls int
	ConfirmCalls    int
}

func (m *MockPaymentAPI) Initialize(ctx context.Context, orderID, method string) (checkout.PaymentIntent, error) {
	m.InitializeCalls++
	if m.InitializeFunc != nil {
		return m.InitializeFunc(ctx, orderID, method)
	}
	return checkout.PaymentIntent{PaymentID: "pay-1", PaymentKey: "key-1"}, nil
}

func (m *MockPaymentAPI) Confirm(ctx context.Context, intent checkout.PaymentIntent) error {
	m.ConfirmCalls++
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, intent)
	}
	return nil
}

// MockBidAPI simulates selling-bid creation.
type MockBidAPI struct {
	CreateFunc   func(ctx context.Context, variantID string, price int64) (checkout.SellingBid, error)
	ListMineFunc func(ctx context.Context, page, size int) (catalog.Page[checkout.SellingBid], error)

	CreateCalls int
}

func (m *MockBidAPI) Create(ctx context.Context, variantID string, price int64) (checkout.SellingBid, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, variantID, price)
	}
	return checkout.SellingBid{ID: "bid-1", VariantID: variantID, Price: price}, nil
}

func (m *MockBidAPI) ListMine(ctx context.Context, page, size int) (catalog.Page[checkout.SellingBid], error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, page, size)
	}
	return catalog.Page[checkout.SellingBid]{Content: []checkout.SellingBid{}}, nil
}

// MemoryStateStore is an in-memory ports.StateStore for tests.
type MemoryStateStore struct {
	mu       sync.Mutex
	cred     *identity.Credential
	draft    *checkout.ShippingDraft
	SaveErr  error
	ClearErr error
}

func (s *MemoryStateStore) SaveCredential(_ context.Context, cred identity.Credential) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
	return nil
}

func (s *MemoryStateStore) LoadCredential(context.Context) (identity.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil || !s.cred.Valid() {
		return identity.Credential{}, ports.ErrNotFound
	}
	return *s.cred, nil
}

func (s *MemoryStateStore) ClearSession(context.Context) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	s.draft = nil
	return nil
}

func (s *MemoryStateStore) SaveShippingDraft(_ context.Context, draft checkout.ShippingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &draft
	return nil
}

func (s *MemoryStateStore) LoadShippingDraft(context.Context) (checkout.ShippingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return checkout.ShippingDraft{}, ports.ErrNotFound
	}
	return *s.draft, nil
}

func (s *MemoryStateStore) ClearShippingDraft(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	return nil
}

// SetCredential seeds a persisted credential bypassing validation, for
// bootstrap tests with garbage state.
func (s *MemoryStateStore) SetCredential(cred identity.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
}

// HasCredential reports whether any credential is persisted.
func (s *MemoryStateStore) HasCredential() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred != nil && s.cred.Valid()
}

// HasDraft reports whether a shipping draft is persisted.
func (s *MemoryStateStore) HasDraft() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft != nil
}
