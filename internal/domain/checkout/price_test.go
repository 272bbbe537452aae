package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"150000", 150000},
		{"150,000", 150000},
		{"1,500,000", 1500000},
		{" 99,000 ", 99000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrice_Rejected(t *testing.T) {
	for _, in := range []string{"", "abc", "150,000원", "-1,000", "0", "12.5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePrice(in)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, "price", apperrors.GetField(err))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0", FormatPrice(0))
	assert.Equal(t, "999", FormatPrice(999))
	assert.Equal(t, "1,000", FormatPrice(1000))
	assert.Equal(t, "150,000", FormatPrice(150000))
	assert.Equal(t, "1,500,000", FormatPrice(1500000))
	assert.Equal(t, "-12,345", FormatPrice(-12345))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, price := range []int64{1, 999, 1000, 235000, 98765432} {
		got, err := ParsePrice(FormatPrice(price))
		require.NoError(t, err)
		assert.Equal(t, price, got)
	}
}
