package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/mocks/backend"
	"github.com/relaymarket/relay-go/internal/ports"
	"github.com/relaymarket/relay-go/internal/testutil"
)

type purchaseFixture struct {
	catalog  *backend.MockCatalogAPI
	orders   *backend.MockOrderAPI
	payments *backend.MockPaymentAPI
	store    *backend.MemoryStateStore
	wizard   *PurchaseWizard
}

func newPurchaseFixture(variants ...catalog.Variant) *purchaseFixture {
	f := &purchaseFixture{
		catalog: &backend.MockCatalogAPI{
			ProductList: []catalog.Product{{ID: "p1", Name: "Runner 270"}},
			VariantList: variants,
		},
		orders:   &backend.MockOrderAPI{},
		payments: &backend.MockPaymentAPI{},
		store:    &backend.MemoryStateStore{},
	}
	f.wizard = NewPurchaseWizard(PurchaseWizardOptions{
		Catalog:       f.catalog,
		Orders:        f.orders,
		Payments:      f.payments,
		Drafts:        f.store,
		PaymentMethod: "card",
	})
	return f
}

// toPay drives a fresh wizard to the pay step.
func (f *purchaseFixture) toPay(t *testing.T, variantID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.wizard.Start(ctx, "p1", ""))
	require.NoError(t, f.wizard.SelectVariant(variantID))
	require.NoError(t, f.wizard.SubmitShipping(ctx, testutil.ValidShippingDraft()))
	require.Equal(t, StepPay, f.wizard.CurrentStep())
}

func TestPurchaseWizard_Start_PreselectedVariantSkipsSelect(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))

	require.NoError(t, f.wizard.Start(context.Background(), "p1", "270"))

	assert.Equal(t, StepEnterShipping, f.wizard.CurrentStep())
	selected, ok := f.wizard.SelectedVariant()
	require.True(t, ok)
	assert.Equal(t, "270", selected.ID)
}

func TestPurchaseWizard_Start_UnknownPreselectStaysOnSelect(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))

	require.NoError(t, f.wizard.Start(context.Background(), "p1", "999"))
	assert.Equal(t, StepSelectVariant, f.wizard.CurrentStep())
}

// A variant with a null ask price cannot advance the wizard and must not
// trigger any network call.
func TestPurchaseWizard_SelectVariant_NullPriceBlocked(t *testing.T) {
	f := newPurchaseFixture(testutil.UnbuyableVariant("280"))

	require.NoError(t, f.wizard.Start(context.Background(), "p1", ""))

	err := f.wizard.SelectVariant("280")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, StepSelectVariant, f.wizard.CurrentStep())
	assert.Equal(t, 0, f.orders.CreateCalls)
	assert.Equal(t, 0, f.payments.InitializeCalls)
}

func TestPurchaseWizard_SubmitShipping_InvalidFieldBlocks(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	ctx := context.Background()

	require.NoError(t, f.wizard.Start(ctx, "p1", ""))
	require.NoError(t, f.wizard.SelectVariant("270"))

	bad := testutil.ValidShippingDraft()
	bad.ReceiverPhone = "not-a-phone"
	err := f.wizard.SubmitShipping(ctx, bad)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, StepEnterShipping, f.wizard.CurrentStep())
	assert.False(t, f.store.HasDraft())
}

// The draft is persisted before the step advances, and reloading it yields
// field-for-field equality with what was submitted.
func TestPurchaseWizard_ShippingDraftRoundTrip(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	ctx := context.Background()

	require.NoError(t, f.wizard.Start(ctx, "p1", ""))
	require.NoError(t, f.wizard.SelectVariant("270"))

	draft := testutil.ValidShippingDraft()
	require.NoError(t, f.wizard.SubmitShipping(ctx, draft))

	restored, err := f.store.LoadShippingDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, draft, restored)
}

func TestPurchaseWizard_Back(t *testing.T) {
	t.Run("shipping returns to select", func(t *testing.T) {
		f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
		require.NoError(t, f.wizard.Start(context.Background(), "p1", ""))
		require.NoError(t, f.wizard.SelectVariant("270"))

		assert.False(t, f.wizard.Back())
		assert.Equal(t, StepSelectVariant, f.wizard.CurrentStep())
	})

	t.Run("shipping exits when entry preselected", func(t *testing.T) {
		f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
		require.NoError(t, f.wizard.Start(context.Background(), "p1", "270"))

		assert.True(t, f.wizard.Back())
	})

	t.Run("pay returns to shipping keeping selections", func(t *testing.T) {
		f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
		f.toPay(t, "270")

		assert.False(t, f.wizard.Back())
		assert.Equal(t, StepEnterShipping, f.wizard.CurrentStep())

		_, ok := f.wizard.SelectedVariant()
		assert.True(t, ok)
	})
}

// Progress reflects the furthest step reached, not just the current one.
func TestPurchaseWizard_ProgressHighWaterMark(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	f.toPay(t, "270")

	current, highWater, steps := f.wizard.Progress()
	assert.Equal(t, 2, current)
	assert.Equal(t, 2, highWater)
	assert.Equal(t, []Step{StepSelectVariant, StepEnterShipping, StepPay, StepComplete}, steps)

	f.wizard.Back()
	current, highWater, _ = f.wizard.Progress()
	assert.Equal(t, 1, current)
	assert.Equal(t, 2, highWater)
}

func TestPurchaseWizard_Commit_HappyPath(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	f.orders.CreateFunc = func(_ context.Context, in ports.CreateOrderInput) (checkout.Order, error) {
		return checkout.Order{ID: "o1"}, nil
	}
	f.payments.InitializeFunc = func(_ context.Context, orderID, method string) (checkout.PaymentIntent, error) {
		assert.Equal(t, "o1", orderID)
		assert.Equal(t, "card", method)
		return checkout.PaymentIntent{PaymentID: "p1", PaymentKey: "k1"}, nil
	}
	f.payments.ConfirmFunc = func(_ context.Context, intent checkout.PaymentIntent) error {
		assert.Equal(t, "p1", intent.PaymentID)
		assert.Equal(t, "k1", intent.PaymentKey)
		return nil
	}
	f.toPay(t, "270")

	order, err := f.wizard.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, StepComplete, f.wizard.CurrentStep())
	assert.Equal(t, "o1", f.wizard.OrderID())
	assert.False(t, f.store.HasDraft())
}

func TestPurchaseWizard_Commit_SendsBidRefAndDraft(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	var got ports.CreateOrderInput
	f.orders.CreateFunc = func(_ context.Context, in ports.CreateOrderInput) (checkout.Order, error) {
		got = in
		return checkout.Order{ID: "o1"}, nil
	}
	f.toPay(t, "270")

	_, err := f.wizard.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bid-270", got.SellingBidID)
	assert.Equal(t, testutil.ValidShippingDraft(), got.Shipping)
}

func TestPurchaseWizard_Commit_OrderCreationFailure(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	f.orders.CreateFunc = func(context.Context, ports.CreateOrderInput) (checkout.Order, error) {
		return checkout.Order{}, apperrors.New(apperrors.ErrCodeOrderCreation, "sold out")
	}
	f.toPay(t, "270")

	_, err := f.wizard.Commit(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsOrderCreation(err))
	assert.Equal(t, "sold out", apperrors.UserMessage(err, "order failed"))

	// No further calls were made and the wizard stays on the pay step.
	assert.Equal(t, 0, f.payments.InitializeCalls)
	assert.Equal(t, 0, f.payments.ConfirmCalls)
	assert.Equal(t, StepPay, f.wizard.CurrentStep())
	assert.True(t, f.store.HasDraft())
}

// Payment-init failure after order creation: exactly one error surfaces, no
// Complete transition happens, and the orphaned order is cancelled
// best-effort.
func TestPurchaseWizard_Commit_PaymentInitFailure(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	f.orders.CreateFunc = func(context.Context, ports.CreateOrderInput) (checkout.Order, error) {
		return checkout.Order{ID: "o1"}, nil
	}
	f.payments.InitializeFunc = func(context.Context, string, string) (checkout.PaymentIntent, error) {
		return checkout.PaymentIntent{}, apperrors.New(apperrors.ErrCodePaymentInitialization, "card declined")
	}
	f.toPay(t, "270")

	_, err := f.wizard.Commit(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsPaymentInitialization(err))
	assert.Equal(t, StepPay, f.wizard.CurrentStep())
	assert.Equal(t, 0, f.payments.ConfirmCalls)
	assert.Equal(t, []string{"o1"}, f.orders.Canceled)
	assert.Empty(t, f.wizard.OrderID())

	// Retry starts over with a fresh order.
	f.payments.InitializeFunc = nil
	_, err = f.wizard.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.orders.CreateCalls)
	assert.Equal(t, StepComplete, f.wizard.CurrentStep())
}

func TestPurchaseWizard_Commit_ConfirmFailure(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	f.orders.CreateFunc = func(context.Context, ports.CreateOrderInput) (checkout.Order, error) {
		return checkout.Order{ID: "o1"}, nil
	}
	f.payments.ConfirmFunc = func(context.Context, checkout.PaymentIntent) error {
		return apperrors.New(apperrors.ErrCodePaymentConfirmation, "payment could not be confirmed")
	}
	f.toPay(t, "270")

	_, err := f.wizard.Commit(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsPaymentConfirmation(err))
	assert.Equal(t, StepPay, f.wizard.CurrentStep())
	assert.Equal(t, []string{"o1"}, f.orders.Canceled)
	assert.True(t, f.store.HasDraft())
}

// A cancel failure is swallowed; the user sees the payment error.
func TestPurchaseWizard_Commit_CancelFailureSwallowed(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	f.payments.InitializeFunc = func(context.Context, string, string) (checkout.PaymentIntent, error) {
		return checkout.PaymentIntent{}, apperrors.New(apperrors.ErrCodePaymentInitialization, "declined")
	}
	f.orders.CancelFunc = func(context.Context, string) error {
		return apperrors.New(apperrors.ErrCodeTransport, "cancel timed out")
	}
	f.toPay(t, "270")

	_, err := f.wizard.Commit(context.Background())
	assert.True(t, apperrors.IsPaymentInitialization(err))
}

func TestPurchaseWizard_Commit_NotReachableBeforePay(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	require.NoError(t, f.wizard.Start(context.Background(), "p1", ""))

	_, err := f.wizard.Commit(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, f.orders.CreateCalls)
}

// A re-entrant commit while one is in flight is blocked, not queued.
func TestPurchaseWizard_Commit_InFlightBlocked(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))

	inCreate := make(chan struct{})
	release := make(chan struct{})
	f.orders.CreateFunc = func(context.Context, ports.CreateOrderInput) (checkout.Order, error) {
		close(inCreate)
		<-release
		return checkout.Order{ID: "o1"}, nil
	}
	f.toPay(t, "270")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.wizard.Commit(context.Background())
		assert.NoError(t, err)
	}()

	<-inCreate
	_, err := f.wizard.Commit(context.Background())
	assert.ErrorIs(t, err, ErrCommitInFlight)

	close(release)
	wg.Wait()
	assert.Equal(t, 1, f.orders.CreateCalls)
}

func TestPurchaseWizard_Start_RestoresPersistedDraft(t *testing.T) {
	f := newPurchaseFixture(testutil.BuyableVariant("270", 150000))
	draft := testutil.ValidShippingDraft()
	require.NoError(t, f.store.SaveShippingDraft(context.Background(), draft))

	require.NoError(t, f.wizard.Start(context.Background(), "p1", "270"))
	assert.Equal(t, draft, f.wizard.ShippingDraft())
}
