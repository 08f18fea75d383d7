package leavebalance_test

import (
	"testing"

	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvertAmount(t *testing.T) {
	t.Run("same unit passes through", func(t *testing.T) {
		amount := decimal.NewFromFloat(2.5)

		got := leavebalance.ConvertAmount(amount, leavetype.UnitDay, leavetype.UnitDay)

		assert.True(t, got.Equal(amount))
	})

	t.Run("hours to days divides by eight", func(t *testing.T) {
		got := leavebalance.ConvertAmount(decimal.NewFromInt(2), leavetype.UnitHour, leavetype.UnitDay)

		assert.True(t, got.Equal(decimal.NewFromFloat(0.25)))
	})

	t.Run("days to hours multiplies by eight", func(t *testing.T) {
		got := leavebalance.ConvertAmount(decimal.NewFromInt(3), leavetype.UnitDay, leavetype.UnitHour)

		assert.True(t, got.Equal(decimal.NewFromInt(24)))
	})

	t.Run("fractional hours stay exact", func(t *testing.T) {
		got := leavebalance.ConvertAmount(decimal.NewFromFloat(7.5), leavetype.UnitHour, leavetype.UnitDay)

		assert.True(t, got.Equal(decimal.NewFromFloat(0.9375)))
	})
}
