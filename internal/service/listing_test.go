package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/mocks/backend"
	"github.com/relaymarket/relay-go/internal/testutil"
)

type listingFixture struct {
	catalog *backend.MockCatalogAPI
	bids    *backend.MockBidAPI
	wizard  *ListingWizard
}

func newListingFixture() *listingFixture {
	f := &listingFixture{
		catalog: &backend.MockCatalogAPI{
			BrandList:   []catalog.Brand{{ID: "b1", Name: "Apex"}, {ID: "b2", Name: "Stride"}},
			ProductList: []catalog.Product{{ID: "p1", Name: "Runner 270", BrandID: "b1"}},
			VariantList: []catalog.Variant{testutil.BuyableVariant("270", 150000), testutil.UnbuyableVariant("280")},
		},
		bids: &backend.MockBidAPI{},
	}
	f.wizard = NewListingWizard(ListingWizardOptions{Catalog: f.catalog, Bids: f.bids})
	return f
}

// toPrice drives a fresh wizard to the price step via the full chain.
func (f *listingFixture) toPrice(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.wizard.Start(ctx, ""))
	require.NoError(t, f.wizard.SelectBrand(ctx, "b1"))
	require.NoError(t, f.wizard.SelectProduct(ctx, "p1"))
	require.NoError(t, f.wizard.SelectVariant("280"))
	require.Equal(t, StepEnterPrice, f.wizard.CurrentStep())
}

func TestListingWizard_Start_LoadsBrands(t *testing.T) {
	f := newListingFixture()

	require.NoError(t, f.wizard.Start(context.Background(), ""))
	assert.Equal(t, StepSelectBrand, f.wizard.CurrentStep())
	assert.Len(t, f.wizard.Brands(), 2)
}

func TestListingWizard_Start_PreselectedProductSkipsToOption(t *testing.T) {
	f := newListingFixture()

	require.NoError(t, f.wizard.Start(context.Background(), "p1"))
	assert.Equal(t, StepSelectOption, f.wizard.CurrentStep())
	assert.Len(t, f.wizard.Variants(), 2)
}

func TestListingWizard_SelectBrand_UnknownRejected(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()
	require.NoError(t, f.wizard.Start(ctx, ""))

	err := f.wizard.SelectBrand(ctx, "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, StepSelectBrand, f.wizard.CurrentStep())
}

// Unlike the buy flow, an option with no open ask can still be listed.
func TestListingWizard_SelectVariant_NullPriceAllowed(t *testing.T) {
	f := newListingFixture()
	require.NoError(t, f.wizard.Start(context.Background(), "p1"))

	require.NoError(t, f.wizard.SelectVariant("280"))
	assert.Equal(t, StepEnterPrice, f.wizard.CurrentStep())
}

func TestListingWizard_Back(t *testing.T) {
	t.Run("walks the full chain backward", func(t *testing.T) {
		f := newListingFixture()
		f.toPrice(t)

		assert.False(t, f.wizard.Back())
		assert.Equal(t, StepSelectOption, f.wizard.CurrentStep())
		assert.False(t, f.wizard.Back())
		assert.Equal(t, StepSelectProduct, f.wizard.CurrentStep())
		assert.False(t, f.wizard.Back())
		assert.Equal(t, StepSelectBrand, f.wizard.CurrentStep())
		assert.True(t, f.wizard.Back())
	})

	t.Run("option step exits when entry preselected", func(t *testing.T) {
		f := newListingFixture()
		require.NoError(t, f.wizard.Start(context.Background(), "p1"))

		assert.True(t, f.wizard.Back())
	})
}

func TestListingWizard_ProgressHighWaterMark(t *testing.T) {
	f := newListingFixture()
	f.toPrice(t)
	f.wizard.Back()

	current, highWater, steps := f.wizard.Progress()
	assert.Equal(t, 2, current)
	assert.Equal(t, 3, highWater)
	assert.Len(t, steps, 5)
}

// Malformed or non-positive prices fail locally; nothing hits the network.
func TestListingWizard_Commit_BadPriceNoNetwork(t *testing.T) {
	f := newListingFixture()
	f.toPrice(t)

	for _, display := range []string{"", "abc", "0", "-5,000", "12a3"} {
		_, err := f.wizard.Commit(context.Background(), display)
		require.Error(t, err, "price %q", display)
		assert.True(t, apperrors.IsValidation(err), "price %q", display)
	}
	assert.Equal(t, 0, f.bids.CreateCalls)
	assert.Equal(t, StepEnterPrice, f.wizard.CurrentStep())
}

func TestListingWizard_Commit_HappyPath(t *testing.T) {
	f := newListingFixture()
	f.bids.CreateFunc = func(_ context.Context, variantID string, price int64) (checkout.SellingBid, error) {
		assert.Equal(t, "280", variantID)
		assert.Equal(t, int64(185000), price)
		return checkout.SellingBid{ID: "bid-9", VariantID: variantID, Price: price}, nil
	}
	f.toPrice(t)

	bid, err := f.wizard.Commit(context.Background(), "185,000")
	require.NoError(t, err)
	assert.Equal(t, "bid-9", bid.ID)
	assert.Equal(t, StepListed, f.wizard.CurrentStep())
	assert.Equal(t, "bid-9", f.wizard.BidID())
}

func TestListingWizard_Commit_CreateFailureStaysOnPrice(t *testing.T) {
	f := newListingFixture()
	f.bids.CreateFunc = func(context.Context, string, int64) (checkout.SellingBid, error) {
		return checkout.SellingBid{}, apperrors.New(apperrors.ErrCodeBidCreation, "listing rejected")
	}
	f.toPrice(t)

	_, err := f.wizard.Commit(context.Background(), "185,000")
	require.Error(t, err)
	assert.True(t, apperrors.IsBidCreation(err))
	assert.Equal(t, StepEnterPrice, f.wizard.CurrentStep())
	assert.Empty(t, f.wizard.BidID())
}

func TestListingWizard_Commit_NotReachableBeforePrice(t *testing.T) {
	f := newListingFixture()
	require.NoError(t, f.wizard.Start(context.Background(), ""))

	_, err := f.wizard.Commit(context.Background(), "185,000")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, f.bids.CreateCalls)
}
