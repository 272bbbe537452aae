package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/relaymarket/relay-go/config"
	"github.com/relaymarket/relay-go/internal/adapters/localstore"
	"github.com/relaymarket/relay-go/internal/adapters/rest"
	"github.com/relaymarket/relay-go/internal/service"
)

// Core bundles the wired orchestration services an application shell needs.
type Core struct {
	Sessions *service.SessionManager
	Catalog  *rest.CatalogAPI
	Orders   *rest.OrderAPI
	Bids     *rest.BidAPI

	store  *localstore.Store
	client *rest.Client
	cfg    *config.AppConfig
	logger *slog.Logger
}

// NewCore opens the local state store, builds the transport client on it, and
// wires the session manager. Wizards are created per entry via the
// NewPurchaseWizard/NewListingWizard methods because their state lives for
// one flow only.
func NewCore(cfg *config.AppConfig, logger *slog.Logger) (*Core, error) {
	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	client, err := rest.NewClient(rest.ClientOptions{
		BaseURL:     cfg.API.BaseURL,
		Credentials: store,
		Logger:      logger,
		Timeout:     cfg.API.Timeout,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build transport client: %w", err)
	}

	sessions := service.NewSessionManager(service.SessionManagerOptions{
		Auth:   rest.NewAuthAPI(client),
		Store:  store,
		Logger: logger,
	})

	return &Core{
		Sessions: sessions,
		Catalog:  rest.NewCatalogAPI(client),
		Orders:   rest.NewOrderAPI(client),
		Bids:     rest.NewBidAPI(client),
		store:    store,
		client:   client,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// NewPurchaseWizard creates a purchase wizard instance for one buy flow.
func (c *Core) NewPurchaseWizard() *service.PurchaseWizard {
	return service.NewPurchaseWizard(service.PurchaseWizardOptions{
		Catalog:       rest.NewCatalogAPI(c.client),
		Orders:        rest.NewOrderAPI(c.client),
		Payments:      rest.NewPaymentAPI(c.client),
		Drafts:        c.store,
		Logger:        c.logger,
		PaymentMethod: string(c.cfg.API.PaymentMethod),
	})
}

// NewListingWizard creates a listing wizard instance for one sell flow.
func (c *Core) NewListingWizard() *service.ListingWizard {
	return service.NewListingWizard(service.ListingWizardOptions{
		Catalog: rest.NewCatalogAPI(c.client),
		Bids:    rest.NewBidAPI(c.client),
		Logger:  c.logger,
	})
}

// Close releases the local state store.
func (c *Core) Close() error {
	return c.store.Close()
}
