package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"railbooking.org/internal/apierror"
)

func expressTrain(t *testing.T) *Train {
	train, ok := DefaultCatalog().Train(1)
	require.True(t, ok)
	return train
}

func TestNewTrainValidation(t *testing.T) {
	_, err := NewTrain(1, "Bad", []string{"A", "B"}, []float64{1}, DiscountWindow{})
	assert.Error(t, err)

	_, err = NewTrain(1, "Short", []string{"A"}, []float64{1}, DiscountWindow{})
	assert.Error(t, err)

	_, err = NewTrain(1, "Backwards", []string{"A", "B"}, []float64{1, 2}, DiscountWindow{Start: 5, End: 1})
	assert.Error(t, err)

	train, err := NewTrain(3, "Ok", []string{"A", "B"}, []float64{1, 2}, DiscountWindow{Start: 1, End: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, train.ID())
	assert.Equal(t, "Ok", train.Name())
	assert.Equal(t, 2, train.StationCount())
}

func TestPriceAt(t *testing.T) {
	train := expressTrain(t)

	assert.Equal(t, 1270.0, train.PriceAt(0))
	assert.Equal(t, 1920.0, train.PriceAt(3))

	// out of bounds costs nothing
	assert.Equal(t, 0.0, train.PriceAt(-1))
	assert.Equal(t, 0.0, train.PriceAt(4))
}

func TestStationName(t *testing.T) {
	train := expressTrain(t)

	assert.Equal(t, "Lahore Junction", train.StationName(0))
	assert.Equal(t, "Gujrat", train.StationName(3))
	assert.Equal(t, "", train.StationName(4))
	assert.Equal(t, "", train.StationName(-1))
}

func TestIsDiscountActiveIsInclusive(t *testing.T) {
	local, ok := DefaultCatalog().Train(2)
	require.True(t, ok)

	assert.True(t, local.IsDiscountActive(1.0))
	assert.True(t, local.IsDiscountActive(11.0))
	assert.True(t, local.IsDiscountActive(5.3))
	assert.False(t, local.IsDiscountActive(0.59))
	assert.False(t, local.IsDiscountActive(11.01))
}

func TestDiscountLabel(t *testing.T) {
	train := expressTrain(t)

	assert.Equal(t, "Discount Applied", train.DiscountLabel(5.0))
	assert.Equal(t, "No Discount", train.DiscountLabel(14.30))
}

func TestTotalFare(t *testing.T) {
	train := expressTrain(t)

	t.Run("outside discount window", func(t *testing.T) {
		total, err := train.TotalFare(14.30, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 3190.0, total)
	})

	t.Run("inside discount window", func(t *testing.T) {
		total, err := train.TotalFare(5.0, 1, 4)
		require.NoError(t, err)
		assert.InDelta(t, 1914.0, total, 1e-9)
	})

	t.Run("direction does not matter", func(t *testing.T) {
		forward, err := train.TotalFare(12.0, 2, 3)
		require.NoError(t, err)
		backward, err := train.TotalFare(12.0, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, forward, backward)
		assert.Equal(t, 3300.0, forward)
	})

	t.Run("window boundary applies discount", func(t *testing.T) {
		total, err := train.TotalFare(10.0, 1, 2)
		require.NoError(t, err)
		assert.InDelta(t, (1270.0+1550.0)*0.6, total, 1e-9)
	})
}

func TestTotalFareRejectsInvalidStations(t *testing.T) {
	train := expressTrain(t)

	tests := []struct {
		name       string
		start, end int
	}{
		{"same station", 2, 2},
		{"same station first", 1, 1},
		{"start below range", 0, 3},
		{"end above range", 1, 5},
		{"negative", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tc := range []float64{0, 5.0, 14.30, 23.59} {
				_, err := train.TotalFare(tc, tt.start, tt.end)
				require.Error(t, err)
				assert.ErrorIs(t, err, apierror.ErrValidation)
				assert.Equal(t, "Invalid start or end station.", err.Error())
			}
		})
	}
}
