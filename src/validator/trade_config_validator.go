package validator

import (
	"fmt"
	"strings"

	"gitlab.com/open-soft/go-futures-bot/src/model"
)

const MinLeverage = 1
const MaxLeverage = 125

type TradeConfigValidator struct {
}

func (v *TradeConfigValidator) Validate(config model.TradeConfig) error {
	violations := make([]string, 0)

	if config.ApiKey == "" || config.ApiSecret == "" {
		violations = append(violations, "BINANCE_API_KEY and BINANCE_API_SECRET are required")
	}

	if config.TradingPair == "" {
		violations = append(violations, "TRADING_PAIR is required")
	}

	if config.Leverage < MinLeverage || config.Leverage > MaxLeverage {
		violations = append(violations, fmt.Sprintf("LEVERAGE should be between %d and %d", MinLeverage, MaxLeverage))
	}

	if config.TotalInvestmentUSD <= 0 {
		violations = append(violations, "TOTAL_INVESTMENT_USD should be greater than 0")
	}

	if config.MinNotional < 0 {
		violations = append(violations, "MIN_NOTIONAL should not be negative")
	}

	if config.TakeProfitPriceDiff < 0 {
		violations = append(violations, "TAKE_PROFIT_PRICE_DIFF should not be negative")
	}

	if !config.UsePriceDiff() {
		if config.TakeProfitPercentage <= 0 {
			violations = append(violations, "TAKE_PROFIT_PRICE_DIFF or TAKE_PROFIT_PERCENTAGE should be set")
		} else if config.TakeProfitPercentage >= 1 {
			violations = append(violations, "TAKE_PROFIT_PERCENTAGE is a fraction and should be less than 1, a short take profit at 100% or more would be at or below zero")
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", model.ErrInvalidConfig, strings.Join(violations, ", "))
	}

	return nil
}
