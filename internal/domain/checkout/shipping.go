package checkout

import (
	"regexp"

	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

// localMobilePattern matches local mobile numbers with optional dashes,
// e.g. 010-1234-5678 or 01012345678.
var localMobilePattern = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

// ShippingDraft holds the shipping fields collected by the purchase wizard.
// It is round-tripped through the local store between the shipping and pay
// steps so a reload in between does not lose it.
type ShippingDraft struct {
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	ZipCode       string `json:"zipCode"`
	Address       string `json:"address"`
	AddressDetail string `json:"addressDetail"`
}

// Validate checks every field and returns the first failure as a validation
// error naming the offending field. A valid draft is a precondition for
// advancing past the shipping step; validation never reaches the network.
func (d ShippingDraft) Validate() error {
	if d.ReceiverName == "" {
		return apperrors.ValidationField("receiverName", "receiver name is required")
	}
	if !localMobilePattern.MatchString(d.ReceiverPhone) {
		return apperrors.ValidationField("receiverPhone", "receiver phone must be a valid mobile number")
	}
	if len(d.ZipCode) < 5 {
		return apperrors.ValidationField("zipCode", "postal code is required")
	}
	if d.Address == "" {
		return apperrors.ValidationField("address", "address is required")
	}
	if d.AddressDetail == "" {
		return apperrors.ValidationField("addressDetail", "address detail is required")
	}
	return nil
}
