package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gitlab.com/open-soft/go-futures-bot/src/model"
)

// LoadTradeConfig reads config.yaml from path when present, environment variables win over the file.
func LoadTradeConfig(path string) (model.TradeConfig, error) {
	var config model.TradeConfig

	reader := viper.New()
	reader.AddConfigPath(path)
	reader.SetConfigName("config")
	reader.SetConfigType("yaml")

	reader.SetDefault("binance_api_key", "")
	reader.SetDefault("binance_api_secret", "")
	reader.SetDefault("binance_futures_dsn", "")
	reader.SetDefault("binance_use_testnet", false)
	reader.SetDefault("trading_pair", "STEEMUSDT")
	reader.SetDefault("leverage", 10)
	reader.SetDefault("total_investment_usd", 10.0)
	reader.SetDefault("take_profit_percentage", 0.0)
	reader.SetDefault("take_profit_price_diff", 0.0003)
	reader.SetDefault("min_notional", 5.0)
	reader.SetDefault("redis_dsn", "")
	reader.SetDefault("redis_password", "")
	reader.SetDefault("precision_cache_ttl", time.Hour)

	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	reader.AutomaticEnv()

	err := reader.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	err = reader.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	config.TradingPair = strings.ToUpper(strings.TrimSpace(config.TradingPair))

	return config, nil
}
