package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-futures-bot/src/config"
	"gitlab.com/open-soft/go-futures-bot/src/validator"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	tradeConfig, err := config.LoadTradeConfig(pwd)
	if err != nil {
		log.Fatalf("Config can't be loaded: %s", err.Error())
	}

	configValidator := validator.TradeConfigValidator{}
	err = configValidator.Validate(tradeConfig)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := config.InitServiceContainer(tradeConfig)
	defer container.Close()

	err = container.ConsoleController.SetupLeverageAction(ctx)
	if err != nil {
		container.Close()
		log.Fatalf("[%s] Leverage can't be set: %s", tradeConfig.TradingPair, err.Error())
	}

	err = container.ConsoleController.Run(ctx)
	if err != nil {
		log.Printf("Console input: %s", err.Error())
	}
}
