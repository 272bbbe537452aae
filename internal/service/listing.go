package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// Listing wizard steps, in order.
const (
	StepSelectBrand   Step = "select_brand"
	StepSelectProduct Step = "select_product"
	StepSelectOption  Step = "select_option"
	StepEnterPrice    Step = "enter_price"
	StepListed        Step = "listed"
)

var listingSteps = []Step{StepSelectBrand, StepSelectProduct, StepSelectOption, StepEnterPrice, StepListed}

// ListingWizardOptions groups dependencies for ListingWizard.
type ListingWizardOptions struct {
	Catalog ports.CatalogAPI
	Bids    ports.BidAPI
	Logger  *slog.Logger
}

// ListingWizard drives the sell flow: pick a brand, a product, a variant,
// enter an asking price. The terminal commit is a single call — create a
// selling bid — so it has no multi-leg failure handling beyond the one error.
type ListingWizard struct {
	catalog ports.CatalogAPI
	bids    ports.BidAPI
	logger  *slog.Logger

	mu          sync.Mutex
	tracker     *stepTracker
	brands      []catalog.Brand
	products    []catalog.Product
	variants    []catalog.Variant
	brand       *catalog.Brand
	product     *catalog.Product
	selected    *catalog.Variant
	price       int64
	preselected bool
	committing  bool
	bidID       string
}

// NewListingWizard constructs a wizard without loading anything; call Start.
func NewListingWizard(opts ListingWizardOptions) *ListingWizard {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingWizard{
		catalog: opts.Catalog,
		bids:    opts.Bids,
		logger:  logger,
		tracker: newStepTracker(listingSteps, StepSelectBrand),
	}
}

// Start enters the wizard. With a preselected product the brand and product
// steps are skipped; otherwise the brand list is loaded for the first step.
func (w *ListingWizard) Start(ctx context.Context, preselectedProductID string) error {
	if preselectedProductID != "" {
		product, err := w.catalog.Product(ctx, preselectedProductID)
		if err != nil {
			return err
		}
		variants, err := w.catalog.Variants(ctx, preselectedProductID)
		if err != nil {
			return err
		}

		w.mu.Lock()
		w.product = &product
		w.variants = variants
		w.preselected = true
		w.tracker = newStepTracker(listingSteps, StepSelectOption)
		w.mu.Unlock()
		return nil
	}

	brands, err := w.catalog.Brands(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.brands = brands
	w.tracker = newStepTracker(listingSteps, StepSelectBrand)
	w.mu.Unlock()
	return nil
}

// Brands returns the brand choices for the first step.
func (w *ListingWizard) Brands() []catalog.Brand {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]catalog.Brand, len(w.brands))
	copy(out, w.brands)
	return out
}

// Products returns the product choices loaded after brand selection.
func (w *ListingWizard) Products() []catalog.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]catalog.Product, len(w.products))
	copy(out, w.products)
	return out
}

// Variants returns the option choices loaded after product selection.
func (w *ListingWizard) Variants() []catalog.Variant {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]catalog.Variant, len(w.variants))
	copy(out, w.variants)
	return out
}

// SelectBrand chooses a brand, loads its products, and advances.
func (w *ListingWizard) SelectBrand(ctx context.Context, brandID string) error {
	w.mu.Lock()
	if w.tracker.currentStep() != StepSelectBrand {
		w.mu.Unlock()
		return apperrors.Validation("brand selection is not available at this step")
	}
	var brand *catalog.Brand
	for i := range w.brands {
		if w.brands[i].ID == brandID {
			brand = &w.brands[i]
			break
		}
	}
	w.mu.Unlock()

	if brand == nil {
		return apperrors.Validation("unknown brand")
	}

	page, err := w.catalog.Products(ctx, ports.ProductQuery{BrandID: brandID})
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.brand = brand
	w.products = page.Content
	w.tracker.goTo(StepSelectProduct)
	w.mu.Unlock()
	return nil
}

// SelectProduct chooses a product, loads its options, and advances.
func (w *ListingWizard) SelectProduct(ctx context.Context, productID string) error {
	w.mu.Lock()
	if w.tracker.currentStep() != StepSelectProduct {
		w.mu.Unlock()
		return apperrors.Validation("product selection is not available at this step")
	}
	var product *catalog.Product
	for i := range w.products {
		if w.products[i].ID == productID {
			product = &w.products[i]
			break
		}
	}
	w.mu.Unlock()

	if product == nil {
		return apperrors.Validation("unknown product")
	}

	variants, err := w.catalog.Variants(ctx, productID)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.product = product
	w.variants = variants
	w.tracker.goTo(StepSelectOption)
	w.mu.Unlock()
	return nil
}

// SelectVariant chooses the option to list and advances to price entry.
// Any option can be listed for sale, including ones with no current ask.
func (w *ListingWizard) SelectVariant(variantID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tracker.currentStep() != StepSelectOption {
		return apperrors.Validation("option selection is not available at this step")
	}
	for i := range w.variants {
		if w.variants[i].ID == variantID {
			w.selected = &w.variants[i]
			w.tracker.goTo(StepEnterPrice)
			return nil
		}
	}
	return apperrors.Validation("unknown option")
}

// Back moves one step backward, or reports exit from the earliest reachable
// step (which depends on whether the entry preselected a product).
func (w *ListingWizard) Back() (exited bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.tracker.currentStep() {
	case StepEnterPrice:
		w.tracker.goTo(StepSelectOption)
	case StepSelectOption:
		if w.preselected {
			return true
		}
		w.tracker.goTo(StepSelectProduct)
	case StepSelectProduct:
		w.tracker.goTo(StepSelectBrand)
	case StepSelectBrand:
		return true
	}
	return false
}

// Commit parses the display price and creates the selling bid. Non-numeric or
// non-positive prices are rejected locally without a network call. On success
// the wizard completes holding the new bid id.
func (w *ListingWizard) Commit(ctx context.Context, displayPrice string) (checkout.SellingBid, error) {
	price, err := checkout.ParsePrice(displayPrice)
	if err != nil {
		return checkout.SellingBid{}, err
	}

	w.mu.Lock()
	if w.committing {
		w.mu.Unlock()
		return checkout.SellingBid{}, ErrCommitInFlight
	}
	if w.tracker.currentStep() != StepEnterPrice {
		w.mu.Unlock()
		return checkout.SellingBid{}, apperrors.Validation("price entry is not available at this step")
	}
	if w.selected == nil {
		w.mu.Unlock()
		return checkout.SellingBid{}, apperrors.Validation("earlier steps are incomplete")
	}
	w.committing = true
	variantID := w.selected.ID
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.committing = false
		w.mu.Unlock()
	}()

	bid, err := w.bids.Create(ctx, variantID, price)
	if err != nil {
		return checkout.SellingBid{}, err
	}

	w.mu.Lock()
	w.price = price
	w.bidID = bid.ID
	w.tracker.goTo(StepListed)
	w.mu.Unlock()

	w.logger.InfoContext(ctx, "listing created", "bid_id", bid.ID, "price", price)
	return bid, nil
}

// BidID returns the created bid id, available once the wizard completes.
func (w *ListingWizard) BidID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bidID
}

// CurrentStep returns the wizard's current step.
func (w *ListingWizard) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tracker.currentStep()
}

// Progress returns the current step index, the furthest-reached index, and
// the ordered step list for the step indicator.
func (w *ListingWizard) Progress() (current, highWater int, steps []Step) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tracker.currentIndex(), w.tracker.highWaterIndex(), w.tracker.stepList()
}
