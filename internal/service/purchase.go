package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// Purchase wizard steps, in order.
const (
	StepSelectVariant Step = "select_variant"
	StepEnterShipping Step = "enter_shipping"
	StepPay           Step = "pay"
	StepComplete      Step = "complete"
)

var purchaseSteps = []Step{StepSelectVariant, StepEnterShipping, StepPay, StepComplete}

// ErrCommitInFlight is returned when a terminal commit is attempted while one
// is already running. Re-entrant commits are blocked, never queued.
var ErrCommitInFlight = errors.New("commit already in flight")

// PurchaseWizardOptions groups dependencies for PurchaseWizard.
type PurchaseWizardOptions struct {
	Catalog  ports.CatalogAPI
	Orders   ports.OrderAPI
	Payments ports.PaymentAPI
	Drafts   ports.DraftStore
	Logger   *slog.Logger

	// PaymentMethod is the method passed when initializing payments.
	PaymentMethod string
}

// PurchaseWizard drives the buy flow: select a variant, enter shipping, pay.
// The terminal commit is a sequential three-call protocol (create order,
// initialize payment, confirm payment) with explicit partial-failure
// handling. State lives for one wizard entry and is dropped on navigation.
type PurchaseWizard struct {
	catalog  ports.CatalogAPI
	orders   ports.OrderAPI
	payments ports.PaymentAPI
	drafts   ports.DraftStore
	logger   *slog.Logger
	method   string

	mu          sync.Mutex
	tracker     *stepTracker
	product     catalog.Product
	variants    []catalog.Variant
	selected    *catalog.Variant
	draft       checkout.ShippingDraft
	draftValid  bool
	preselected bool
	committing  bool
	orderID     string
}

// NewPurchaseWizard constructs a wizard without loading anything; call Start.
func NewPurchaseWizard(opts PurchaseWizardOptions) *PurchaseWizard {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	method := opts.PaymentMethod
	if method == "" {
		method = "card"
	}
	return &PurchaseWizard{
		catalog:  opts.Catalog,
		orders:   opts.Orders,
		payments: opts.Payments,
		drafts:   opts.Drafts,
		logger:   logger,
		method:   method,
		tracker:  newStepTracker(purchaseSteps, StepSelectVariant),
	}
}

// Start loads the product and its variants. When the referring screen
// preselected a variant the select step is skipped, and a shipping draft
// persisted by an interrupted earlier run pre-fills the shipping step.
func (w *PurchaseWizard) Start(ctx context.Context, productID, preselectedVariantID string) error {
	product, err := w.catalog.Product(ctx, productID)
	if err != nil {
		return err
	}
	variants, err := w.catalog.Variants(ctx, productID)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.product = product
	w.variants = variants
	w.tracker = newStepTracker(purchaseSteps, StepSelectVariant)

	if preselectedVariantID != "" {
		for i := range variants {
			if variants[i].ID == preselectedVariantID && variants[i].Buyable() {
				w.selected = &variants[i]
				w.preselected = true
				w.tracker.goTo(StepEnterShipping)
				break
			}
		}
	}

	if draft, err := w.drafts.LoadShippingDraft(ctx); err == nil {
		w.draft = draft
	}
	return nil
}

// Product returns the product the wizard was entered from.
func (w *PurchaseWizard) Product() catalog.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.product
}

// Variants returns the purchase options loaded at start.
func (w *PurchaseWizard) Variants() []catalog.Variant {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]catalog.Variant, len(w.variants))
	copy(out, w.variants)
	return out
}

// SelectedVariant returns the chosen variant, if any.
func (w *PurchaseWizard) SelectedVariant() (catalog.Variant, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected == nil {
		return catalog.Variant{}, false
	}
	return *w.selected, true
}

// ShippingDraft returns the current draft (possibly restored from the store).
func (w *PurchaseWizard) ShippingDraft() checkout.ShippingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// SelectVariant chooses a variant and advances to the shipping step. A
// variant with no open ask cannot be bought: the transition is blocked with a
// validation message and no network call is made.
func (w *PurchaseWizard) SelectVariant(variantID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tracker.currentStep() != StepSelectVariant {
		return apperrors.Validation("variant selection is not available at this step")
	}

	for i := range w.variants {
		if w.variants[i].ID != variantID {
			continue
		}
		if !w.variants[i].Buyable() {
			return apperrors.Validation("this option has no open listing to buy")
		}
		w.selected = &w.variants[i]
		w.tracker.goTo(StepEnterShipping)
		return nil
	}
	return apperrors.Validation("unknown option")
}

// SubmitShipping validates the shipping fields and advances to the pay step.
// The draft is persisted before advancing so a reload between the shipping
// and pay steps does not lose it.
func (w *PurchaseWizard) SubmitShipping(ctx context.Context, draft checkout.ShippingDraft) error {
	w.mu.Lock()
	if w.tracker.currentStep() != StepEnterShipping {
		w.mu.Unlock()
		return apperrors.Validation("shipping entry is not available at this step")
	}
	w.mu.Unlock()

	if err := draft.Validate(); err != nil {
		return err
	}

	if err := w.drafts.SaveShippingDraft(ctx, draft); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist shipping draft")
	}

	w.mu.Lock()
	w.draft = draft
	w.draftValid = true
	w.tracker.goTo(StepPay)
	w.mu.Unlock()
	return nil
}

// Back moves one step backward. From the shipping step it returns to variant
// selection, or reports exit when the wizard was entered with a preselected
// variant. From the pay step it returns to shipping; downstream selections
// are kept, only the step pointer moves.
func (w *PurchaseWizard) Back() (exited bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.tracker.currentStep() {
	case StepEnterShipping:
		if w.preselected {
			return true
		}
		w.tracker.goTo(StepSelectVariant)
	case StepPay:
		w.tracker.goTo(StepEnterShipping)
	case StepSelectVariant:
		return true
	}
	return false
}

// Commit runs the terminal pay sequence: create order, initialize payment,
// confirm payment. The calls are strictly sequential; each depends on the
// previous call's output. Any failure leaves the wizard on the pay step with
// exactly one error for the user, and a retry starts over with a fresh order.
// When a payment leg fails after the order exists, a best-effort cancel is
// issued so the pending order is not silently orphaned server-side.
func (w *PurchaseWizard) Commit(ctx context.Context) (checkout.Order, error) {
	w.mu.Lock()
	if w.committing {
		w.mu.Unlock()
		return checkout.Order{}, ErrCommitInFlight
	}
	if w.tracker.currentStep() != StepPay {
		w.mu.Unlock()
		return checkout.Order{}, apperrors.Validation("payment is not available at this step")
	}
	if w.selected == nil || !w.draftValid {
		w.mu.Unlock()
		return checkout.Order{}, apperrors.Validation("earlier steps are incomplete")
	}
	w.committing = true
	bidRef := w.selected.BidRef()
	draft := w.draft
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.committing = false
		w.mu.Unlock()
	}()

	order, err := w.orders.Create(ctx, ports.CreateOrderInput{SellingBidID: bidRef, Shipping: draft})
	if err != nil {
		return checkout.Order{}, err
	}

	intent, err := w.payments.Initialize(ctx, order.ID, w.method)
	if err != nil {
		w.cancelOrder(ctx, order.ID)
		return checkout.Order{}, err
	}

	if err := w.payments.Confirm(ctx, intent); err != nil {
		w.cancelOrder(ctx, order.ID)
		return checkout.Order{}, err
	}

	if err := w.drafts.ClearShippingDraft(ctx); err != nil {
		w.logger.WarnContext(ctx, "clear shipping draft after commit", "error", err)
	}

	w.mu.Lock()
	w.orderID = order.ID
	w.tracker.goTo(StepComplete)
	w.mu.Unlock()

	w.logger.InfoContext(ctx, "purchase committed", "order_id", order.ID)
	return order, nil
}

// cancelOrder compensates for a failed payment leg. Failure here is logged
// and swallowed; the user sees the payment error, not the cleanup's.
func (w *PurchaseWizard) cancelOrder(ctx context.Context, orderID string) {
	if err := w.orders.Cancel(ctx, orderID); err != nil {
		w.logger.WarnContext(ctx, "cancel pending order after payment failure",
			"order_id", orderID, "error", err)
	}
}

// OrderID returns the committed order id, available once Complete is reached.
func (w *PurchaseWizard) OrderID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.orderID
}

// CurrentStep returns the wizard's current step.
func (w *PurchaseWizard) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tracker.currentStep()
}

// Progress returns the current step index, the furthest-reached index, and
// the ordered step list for the step indicator.
func (w *PurchaseWizard) Progress() (current, highWater int, steps []Step) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tracker.currentIndex(), w.tracker.highWaterIndex(), w.tracker.stepList()
}
