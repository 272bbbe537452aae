package testutil

// Package testutil provides builders for common test fixtures.

import (
	"github.com/relaymarket/relay-go/internal/domain/catalog"
	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/domain/identity"
)

// ValidShippingDraft returns a draft that passes every field validation.
func ValidShippingDraft() checkout.ShippingDraft {
	return checkout.ShippingDraft{
		ReceiverName:  "Jordan Park",
		ReceiverPhone: "010-1234-5678",
		ZipCode:       "06236",
		Address:       "123 Teheran-ro",
		AddressDetail: "Apt 501",
	}
}

// BuyableVariant returns a variant with an open ask at the given price.
func BuyableVariant(id string, price int64) catalog.Variant {
	return catalog.Variant{ID: id, Label: "size " + id, LowestPrice: &price, LowestBidID: "bid-" + id}
}

// UnbuyableVariant returns a variant with no open ask (null price).
func UnbuyableVariant(id string) catalog.Variant {
	return catalog.Variant{ID: id, Label: "size " + id}
}

// ShopperPrincipal returns a resolved shopper principal.
func ShopperPrincipal() identity.Principal {
	return identity.Principal{
		ID:          "u1",
		Email:       "shopper@example.com",
		DisplayName: "Shopper",
		Phone:       "010-1111-2222",
	}
}

// StaffPrincipal returns a resolved staff principal with the given role.
func StaffPrincipal(role identity.StaffRole) identity.Principal {
	return identity.Principal{
		ID:          "s1",
		Email:       "staff@example.com",
		DisplayName: "Staff",
		StaffRole:   role,
	}
}
