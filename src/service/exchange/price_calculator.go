package exchange

import (
	"github.com/shopspring/decimal"
	"gitlab.com/open-soft/go-futures-bot/src/model"
)

type PriceCalculator struct {
}

// CalculateQuantity converts a USD amount into an asset quantity rounded to precision.
// The second result is true when the quantity was raised to meet minNotional.
func (c *PriceCalculator) CalculateQuantity(investment float64, price float64, minNotional float64, precision int) (float64, bool, error) {
	if price <= 0 {
		return 0, false, model.ErrPriceUnavailable
	}

	currentPrice := decimal.NewFromFloat(price)
	quantity := decimal.NewFromFloat(investment).Div(currentPrice).Round(int32(precision))
	adjusted := false

	if quantity.Mul(currentPrice).LessThan(decimal.NewFromFloat(minNotional)) {
		quantity = decimal.NewFromFloat(minNotional).Div(currentPrice).Round(int32(precision))
		adjusted = true
	}

	if !quantity.IsPositive() {
		return 0, adjusted, model.ErrZeroQuantity
	}

	return quantity.InexactFloat64(), adjusted, nil
}

// CalculateTakeProfitPrice applies the fixed diff when it is set, the percentage otherwise.
func (c *PriceCalculator) CalculateTakeProfitPrice(position model.PositionType, entryPrice float64, priceDiff float64, percentage float64, precision int) float64 {
	entry := decimal.NewFromFloat(entryPrice)
	var takeProfit decimal.Decimal

	if priceDiff != 0 {
		diff := decimal.NewFromFloat(priceDiff)
		if position.IsLong() {
			takeProfit = entry.Add(diff)
		} else {
			takeProfit = entry.Sub(diff)
		}
	} else {
		ratio := decimal.NewFromFloat(percentage)
		if position.IsLong() {
			takeProfit = entry.Mul(decimal.NewFromInt(1).Add(ratio))
		} else {
			takeProfit = entry.Mul(decimal.NewFromInt(1).Sub(ratio))
		}
	}

	return takeProfit.Round(int32(precision)).InexactFloat64()
}
