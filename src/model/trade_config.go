package model

import "time"

type TradeConfig struct {
	ApiKey               string        `mapstructure:"binance_api_key"`
	ApiSecret            string        `mapstructure:"binance_api_secret"`
	FuturesDSN           string        `mapstructure:"binance_futures_dsn"`
	UseTestnet           bool          `mapstructure:"binance_use_testnet"`
	TradingPair          string        `mapstructure:"trading_pair"`
	Leverage             int           `mapstructure:"leverage"`
	TotalInvestmentUSD   float64       `mapstructure:"total_investment_usd"`
	TakeProfitPercentage float64       `mapstructure:"take_profit_percentage"` // fraction, 0.01 = 1%
	TakeProfitPriceDiff  float64       `mapstructure:"take_profit_price_diff"`
	MinNotional          float64       `mapstructure:"min_notional"`
	RedisDSN             string        `mapstructure:"redis_dsn"`
	RedisPassword        string        `mapstructure:"redis_password"`
	PrecisionCacheTTL    time.Duration `mapstructure:"precision_cache_ttl"`
}

// UsePriceDiff reports whether the fixed take-profit offset wins over the percentage.
func (c TradeConfig) UsePriceDiff() bool {
	return c.TakeProfitPriceDiff != 0
}

func (c TradeConfig) IsCacheEnabled() bool {
	return c.RedisDSN != ""
}
