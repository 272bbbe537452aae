package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

func validDraft() ShippingDraft {
	return ShippingDraft{
		ReceiverName:  "Jordan Park",
		ReceiverPhone: "010-1234-5678",
		ZipCode:       "06236",
		Address:       "123 Teheran-ro",
		AddressDetail: "Apt 501",
	}
}

func TestShippingDraft_Validate_OK(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	// Dashes in the phone number are optional.
	undashed := validDraft()
	undashed.ReceiverPhone = "01012345678"
	assert.NoError(t, undashed.Validate())
}

func TestShippingDraft_Validate_FieldFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShippingDraft)
		field   string
	}{
		{"empty receiver", func(d *ShippingDraft) { d.ReceiverName = "" }, "receiverName"},
		{"landline phone", func(d *ShippingDraft) { d.ReceiverPhone = "02-123-4567" }, "receiverPhone"},
		{"empty phone", func(d *ShippingDraft) { d.ReceiverPhone = "" }, "receiverPhone"},
		{"phone with letters", func(d *ShippingDraft) { d.ReceiverPhone = "010-abcd-5678" }, "receiverPhone"},
		{"short zip", func(d *ShippingDraft) { d.ZipCode = "123" }, "zipCode"},
		{"empty address", func(d *ShippingDraft) { d.Address = "" }, "address"},
		{"empty address detail", func(d *ShippingDraft) { d.AddressDetail = "" }, "addressDetail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := draft.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.field, apperrors.GetField(err))
		})
	}
}
