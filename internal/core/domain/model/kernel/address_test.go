package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address with all parts", func(t *testing.T) {
		address, err := kernel.NewAddress("Seoul", "Gangnam-daero 1", "06000")

		require.NoError(t, err)
		assert.Equal(t, "Seoul", address.City())
		assert.Equal(t, "Gangnam-daero 1", address.Street())
		assert.Equal(t, "06000", address.Zipcode())
		require.NoError(t, address.Validate())
	})

	t.Run("fails on missing parts", func(t *testing.T) {
		tests := []struct {
			name    string
			city    string
			street  string
			zipcode string
			wantErr error
		}{
			{"missing city", "", "Main St", "12345", kernel.ErrCityIsRequired},
			{"missing street", "Seoul", "", "12345", kernel.ErrStreetIsRequired},
			{"missing zipcode", "Seoul", "Main St", "", kernel.ErrZipcodeIsRequired},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewAddress(tt.city, tt.street, tt.zipcode)

				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("collects all violations", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCityIsRequired)
		require.ErrorIs(t, err, kernel.ErrStreetIsRequired)
		require.ErrorIs(t, err, kernel.ErrZipcodeIsRequired)
	})
}

func TestAddressValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var address kernel.Address

		err := address.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddressIsEqual(t *testing.T) {
	a1, err := kernel.NewAddress("Seoul", "Main St", "12345")
	require.NoError(t, err)
	a2, err := kernel.NewAddress("Seoul", "Main St", "12345")
	require.NoError(t, err)
	a3, err := kernel.NewAddress("Busan", "Main St", "12345")
	require.NoError(t, err)

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(a3))
}
