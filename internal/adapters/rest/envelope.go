package rest

import (
	"bytes"
	"encoding/json"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

// The backend wraps most payloads as {"data": ...} but not all endpoints
// agree, and paginated listings add a nested {"content": [...]} page. Each
// endpoint wrapper declares its expected shape by choosing a decode function;
// a shape mismatch is a loud decode error, never a silent empty value.

// decodeData decodes a payload documented as {"data": T}, accepting a bare T
// for the endpoints that skip the wrapper.
func decodeData[T any](body []byte) (T, error) {
	var zero T

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelopePresent(envelope.Data) {
		var value T
		if err := json.Unmarshal(envelope.Data, &value); err != nil {
			return zero, apperrors.Wrap(err, apperrors.ErrCodeDecode, "decode data envelope")
		}
		return value, nil
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		return zero, apperrors.Wrap(err, apperrors.ErrCodeDecode, "decode response body")
	}
	return value, nil
}

// decodePage decodes a paginated listing documented as
// {"data": {"content": [T], ...}}, accepting the page at the top level.
func decodePage[T any](body []byte) (catalog.Page[T], error) {
	page, err := decodeData[catalog.Page[T]](body)
	if err != nil {
		return catalog.Page[T]{}, err
	}
	if page.Content == nil {
		return catalog.Page[T]{}, apperrors.New(apperrors.ErrCodeDecode, "page envelope missing content")
	}
	return page, nil
}

// decodeList decodes a payload documented as {"data": [T]} or a bare array.
func decodeList[T any](body []byte) ([]T, error) {
	items, err := decodeData[[]T](body)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, apperrors.New(apperrors.ErrCodeDecode, "list envelope missing array")
	}
	return items, nil
}

func envelopePresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
