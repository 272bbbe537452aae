// Package mocks provides generated mock implementations for the port
// interfaces.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// Hand-written function-field doubles for the API ports live in
// internal/mocks/backend and cover most unit tests; gomock is used where
// call-order and argument expectations matter.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for StateStore interface from internal/ports.
// This creates MockStateStore with methods for all StateStore interface
// methods: SaveCredential, LoadCredential, ClearSession, SaveShippingDraft,
// LoadShippingDraft, ClearShippingDraft.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=state_store_mock.go github.com/relaymarket/relay-go/internal/ports StateStore
