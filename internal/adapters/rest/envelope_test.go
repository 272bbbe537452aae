package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaymarket/relay-go/internal/domain/catalog"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
)

func TestDecodeData(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		brand, err := decodeData[catalog.Brand]([]byte(`{"data":{"id":"b1","name":"Apex"}}`))
		require.NoError(t, err)
		assert.Equal(t, "Apex", brand.Name)
	})

	t.Run("bare", func(t *testing.T) {
		brand, err := decodeData[catalog.Brand]([]byte(`{"id":"b1","name":"Apex"}`))
		require.NoError(t, err)
		assert.Equal(t, "Apex", brand.Name)
	})

	t.Run("null data falls through to bare decode", func(t *testing.T) {
		brand, err := decodeData[catalog.Brand]([]byte(`{"data":null}`))
		require.NoError(t, err)
		assert.Empty(t, brand.ID)
	})

	t.Run("shape mismatch is a decode error", func(t *testing.T) {
		_, err := decodeData[catalog.Brand]([]byte(`"just a string"`))
		require.Error(t, err)
		assert.True(t, apperrors.IsDecode(err))
	})
}

func TestDecodePage(t *testing.T) {
	t.Run("wrapped page", func(t *testing.T) {
		page, err := decodePage[catalog.Product]([]byte(`{"data":{"content":[{"id":"p1","name":"Runner"}],"number":0,"totalPages":3,"totalElements":41}}`))
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 41, page.TotalElements)
	})

	t.Run("top-level page", func(t *testing.T) {
		page, err := decodePage[catalog.Product]([]byte(`{"content":[],"totalPages":0}`))
		require.NoError(t, err)
		assert.Empty(t, page.Content)
	})

	t.Run("missing content is a decode error not an empty page", func(t *testing.T) {
		_, err := decodePage[catalog.Product]([]byte(`{"totalPages":3}`))
		require.Error(t, err)
		assert.True(t, apperrors.IsDecode(err))
	})
}

func TestDecodeList(t *testing.T) {
	t.Run("wrapped list", func(t *testing.T) {
		brands, err := decodeList[catalog.Brand]([]byte(`{"data":[{"id":"b1"},{"id":"b2"}]}`))
		require.NoError(t, err)
		assert.Len(t, brands, 2)
	})

	t.Run("bare list", func(t *testing.T) {
		brands, err := decodeList[catalog.Brand]([]byte(`[{"id":"b1"}]`))
		require.NoError(t, err)
		assert.Len(t, brands, 1)
	})

	t.Run("missing array is a decode error", func(t *testing.T) {
		_, err := decodeList[catalog.Brand]([]byte(`{}`))
		require.Error(t, err)
		assert.True(t, apperrors.IsDecode(err))
	})
}
