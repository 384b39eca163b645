package config

import (
	"os"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-futures-bot/src/client"
	"gitlab.com/open-soft/go-futures-bot/src/controller"
	"gitlab.com/open-soft/go-futures-bot/src/model"
	"gitlab.com/open-soft/go-futures-bot/src/service/exchange"
	"gitlab.com/open-soft/go-futures-bot/src/utils"
)

func InitServiceContainer(config model.TradeConfig) Container {
	var rdb *redis.Client
	if config.IsCacheEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.RedisDSN,
			Password: config.RedisPassword,
			DB:       0,
		})
	}

	formatter := utils.Formatter{}
	binance := client.NewBinanceFutures(config, &formatter)

	precisionService := exchange.PrecisionService{
		Binance:   binance,
		Formatter: &formatter,
		RDB:       rdb,
		CacheTTL:  config.PrecisionCacheTTL,
	}

	priceCalculator := exchange.PriceCalculator{}

	orderExecutor := exchange.OrderExecutor{
		Binance:          binance,
		PrecisionService: &precisionService,
		PriceCalculator:  &priceCalculator,
		Config:           &config,
	}

	consoleController := controller.ConsoleController{
		Input:         os.Stdin,
		Output:        os.Stdout,
		OrderExecutor: &orderExecutor,
		Config:        &config,
	}

	return Container{
		Config:            &config,
		RDB:               rdb,
		Formatter:         &formatter,
		Binance:           binance,
		PrecisionService:  &precisionService,
		PriceCalculator:   &priceCalculator,
		OrderExecutor:     &orderExecutor,
		ConsoleController: &consoleController,
	}
}

type Container struct {
	Config            *model.TradeConfig
	RDB               *redis.Client
	Formatter         *utils.Formatter
	Binance           *client.BinanceFutures
	PrecisionService  *exchange.PrecisionService
	PriceCalculator   *exchange.PriceCalculator
	OrderExecutor     *exchange.OrderExecutor
	ConsoleController *controller.ConsoleController
}

func (c *Container) Close() {
	if c.RDB != nil {
		_ = c.RDB.Close()
	}
}
