package ports

import (
	"context"

	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/domain/identity"
)

// ErrNotFound is returned by stores when no value is persisted under a key.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

// ErrNotFound is the sentinel for an absent persisted value.
var ErrNotFound error = notFoundError{}

// CredentialStore persists the credential (token plus kind as one value, so
// the two can never be left half-cleared) across application restarts.
type CredentialStore interface {
	SaveCredential(ctx context.Context, cred identity.Credential) error
	LoadCredential(ctx context.Context) (identity.Credential, error)
	// ClearSession removes the credential and every other piece of session
	// state (including any shipping draft) atomically.
	ClearSession(ctx context.Context) error
}

// DraftStore round-trips the in-progress shipping draft between wizard steps
// so a reload mid-wizard does not silently lose it.
type DraftStore interface {
	SaveShippingDraft(ctx context.Context, draft checkout.ShippingDraft) error
	LoadShippingDraft(ctx context.Context) (checkout.ShippingDraft, error)
	ClearShippingDraft(ctx context.Context) error
}

// StateStore is the combined local persistence surface a single device holds.
type StateStore interface {
	CredentialStore
	DraftStore
}
