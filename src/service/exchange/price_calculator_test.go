package exchange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-futures-bot/src/model"
)

func TestShouldScaleInvestmentIntoQuantity(t *testing.T) {
	assertion := assert.New(t)
	priceCalculator := PriceCalculator{}

	quantity, adjusted, err := priceCalculator.CalculateQuantity(10, 2.00, 5, 2)
	assertion.Nil(err)
	assertion.False(adjusted)
	assertion.Equal(5.0, quantity)

	quantity, adjusted, err = priceCalculator.CalculateQuantity(10, 50, 5, 3)
	assertion.Nil(err)
	assertion.False(adjusted)
	assertion.Equal(0.2, quantity)

	quantity, adjusted, err = priceCalculator.CalculateQuantity(10, 3, 5, 2)
	assertion.Nil(err)
	assertion.False(adjusted)
	assertion.Equal(3.33, quantity)
}

func TestShouldRaiseQuantityToMinNotional(t *testing.T) {
	assertion := assert.New(t)
	priceCalculator := PriceCalculator{}

	quantity, adjusted, err := priceCalculator.CalculateQuantity(4, 2.00, 5, 2)
	assertion.Nil(err)
	assertion.True(adjusted)
	assertion.Equal(2.5, quantity)

	// 0.0004 rounds down to 0.000 and is recomputed from the floor
	quantity, adjusted, err = priceCalculator.CalculateQuantity(10, 25000, 100, 3)
	assertion.Nil(err)
	assertion.True(adjusted)
	assertion.Equal(0.004, quantity)

	quantity, adjusted, err = priceCalculator.CalculateQuantity(4, 2.00, 5, 0)
	assertion.Nil(err)
	assertion.True(adjusted)
	assertion.Equal(3.0, quantity)
}

func TestShouldRejectQuantityWithoutPrice(t *testing.T) {
	assertion := assert.New(t)
	priceCalculator := PriceCalculator{}

	_, _, err := priceCalculator.CalculateQuantity(10, 0, 5, 2)
	assertion.True(errors.Is(err, model.ErrPriceUnavailable))

	_, _, err = priceCalculator.CalculateQuantity(10, 60000, 0, 2)
	assertion.True(errors.Is(err, model.ErrZeroQuantity))
}

func TestShouldCalculateTakeProfitByDiff(t *testing.T) {
	assertion := assert.New(t)
	priceCalculator := PriceCalculator{}

	assertion.Equal(2.0003, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeLong, 2.0000, 0.0003, 0, 4))
	assertion.Equal(1.9997, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeShort, 2.0000, 0.0003, 0, 4))
	// diff wins over percentage
	assertion.Equal(2.0003, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeLong, 2.0000, 0.0003, 0.5, 4))
	assertion.Equal(0.2157, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeLong, 0.21537, 0.0003, 0, 4))
}

func TestShouldCalculateTakeProfitByPercentage(t *testing.T) {
	assertion := assert.New(t)
	priceCalculator := PriceCalculator{}

	assertion.Equal(101.0, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeLong, 100, 0, 0.01, 2))
	assertion.Equal(99.0, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeShort, 100, 0, 0.01, 2))
	assertion.Equal(2.03, priceCalculator.CalculateTakeProfitPrice(model.PositionTypeLong, 2.0111, 0, 0.01, 2))
}
