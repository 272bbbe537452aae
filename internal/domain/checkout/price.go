package checkout

import (
	"strconv"
	"strings"

	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

// ParsePrice converts a thousands-separated display price ("1,500,000") back
// to an integer amount. Non-numeric or non-positive input is rejected locally
// without a network call.
func ParsePrice(display string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(display), ",", "")
	if cleaned == "" {
		return 0, apperrors.ValidationField("price", "price is required")
	}
	price, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, apperrors.ValidationField("price", "price must be a number")
	}
	if price <= 0 {
		return 0, apperrors.ValidationField("price", "price must be positive")
	}
	return price, nil
}

// FormatPrice renders an integer amount with thousands separators for display.
func FormatPrice(price int64) string {
	digits := strconv.FormatInt(price, 10)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
