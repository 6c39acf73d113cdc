package kernel_test

import (
	"testing"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDestination(t *testing.T) {
	t.Run("should create destination with valid name", func(t *testing.T) {
		destination, err := kernel.NewDestination("Tallinn")

		require.NoError(t, err)
		assert.Equal(t, "Tallinn", destination.Name())
		assert.Equal(t, "Tallinn", destination.String())
		require.NoError(t, destination.Validate())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := kernel.NewDestination("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "destination name is required")
	})
}

func TestDestination_IsEqual(t *testing.T) {
	t.Run("should compare destinations by name", func(t *testing.T) {
		tallinn1, _ := kernel.NewDestination("Tallinn")
		tallinn2, _ := kernel.NewDestination("Tallinn")
		tartu, _ := kernel.NewDestination("Tartu")

		assert.True(t, tallinn1.IsEqual(tallinn2))
		assert.True(t, tallinn2.IsEqual(tallinn1))
		assert.False(t, tallinn1.IsEqual(tartu))
	})

	t.Run("should work as map key", func(t *testing.T) {
		tallinn1, _ := kernel.NewDestination("Tallinn")
		tallinn2, _ := kernel.NewDestination("Tallinn")

		buckets := map[kernel.Destination]int{tallinn1: 1}
		assert.Equal(t, 1, buckets[tallinn2])
	})
}

func TestDestination_Validate(t *testing.T) {
	t.Run("should return error for zero value destination", func(t *testing.T) {
		var destination kernel.Destination

		err := destination.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDestinationIsNotConstructed, err)
	})
}
