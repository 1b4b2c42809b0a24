package product_test

import (
	"testing"
	"time"

	"gridstore/internal/core/domain/model/kernel"
	"gridstore/internal/core/domain/model/product"
	"gridstore/internal/core/domain/model/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	createdAt := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)
	parsed, err := scan.ParseProductCode("VA-M-000126-2")
	require.NoError(t, err)

	t.Run("valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"VA-M-000126-2", "M", "black", "101725-VA-M-000126-2",
			2, 3, parsed, "101725", createdAt)

		require.NoError(t, err)
		assert.Equal(t, "VA-M-000126-2", p.Code())
		assert.Equal(t, "VA", p.ProductionArea())
		assert.Equal(t, "M", p.SizeCode())
		assert.Equal(t, "000126", p.OrderNumber())
		assert.Equal(t, 2, p.SequenceNumber())
		assert.Equal(t, 2, p.ProductSequence())
		assert.Equal(t, 3, p.OrderTotal())
		assert.Equal(t, "101725", p.OrderDate())
		assert.Equal(t, createdAt, p.CreatedAt())
		require.NoError(t, p.Validate())
	})

	t.Run("scanner and label sequences kept apart", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"VA-M-000126-2", "M", "black", "101725-VA-M-000126-2",
			5, 6, parsed, "101725", createdAt)

		require.NoError(t, err)
		assert.Equal(t, 5, p.SequenceNumber())
		assert.Equal(t, 2, p.ProductSequence())
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"", "M", "black", "", 2, 3, parsed, "101725", createdAt)
		require.Error(t, err)
	})

	t.Run("non-positive sequence number", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"VA-M-000126-2", "M", "black", "", 0, 3, parsed, "101725", createdAt)
		require.Error(t, err)
	})

	t.Run("non-positive order total", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"VA-M-000126-2", "M", "black", "", 2, 0, parsed, "101725", createdAt)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
