package exchange

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gitlab.com/open-soft/go-futures-bot/src/client"
	"gitlab.com/open-soft/go-futures-bot/src/model"
)

type OrderExecutorInterface interface {
	SetupLeverage(ctx context.Context) (model.LeverageSettings, error)
	CreateOrder(ctx context.Context, position model.PositionType) (model.OrderSummary, error)
}

type OrderExecutor struct {
	Binance          client.ExchangeFuturesAPIInterface
	PrecisionService PrecisionServiceInterface
	PriceCalculator  *PriceCalculator
	Config           *model.TradeConfig
}

func (e *OrderExecutor) SetupLeverage(ctx context.Context) (model.LeverageSettings, error) {
	settings, err := e.Binance.ChangeLeverage(ctx, e.Config.TradingPair, e.Config.Leverage)
	if err != nil {
		return settings, err
	}

	log.Printf("[%s] Leverage set to %dx", e.Config.TradingPair, settings.Leverage)

	return settings, nil
}

// CreateOrder opens a market position and rests a take-profit limit order against it.
func (e *OrderExecutor) CreateOrder(ctx context.Context, position model.PositionType) (model.OrderSummary, error) {
	symbol := e.Config.TradingPair
	summary := model.OrderSummary{
		PositionType: position,
		Symbol:       symbol,
		Leverage:     e.Config.Leverage,
		Margin:       e.Config.TotalInvestmentUSD,
	}

	currentPrice, err := e.Binance.GetTickerPrice(ctx, symbol)
	if err != nil {
		return summary, err
	}

	precision, err := e.PrecisionService.GetPrecision(ctx, symbol)
	if err != nil {
		return summary, err
	}

	minNotional := math.Max(e.Config.MinNotional, precision.MinNotional)
	quantity, adjusted, err := e.PriceCalculator.CalculateQuantity(
		e.Config.TotalInvestmentUSD,
		currentPrice,
		minNotional,
		precision.QuantityPrecision,
	)
	if err != nil {
		return summary, model.NewTradeError(model.ErrorKindValidation, "CalculateQuantity", symbol, err)
	}

	if adjusted {
		log.Printf("[%s] Adjusting quantity to meet minimum notional value of %.2f USD", symbol, minNotional)
	}

	summary.Quantity = quantity
	summary.QuantityAdjusted = adjusted
	summary.MinNotional = minNotional

	hedgeMode, err := e.Binance.IsDualSidePosition(ctx)
	if err != nil {
		return summary, err
	}
	summary.HedgeMode = hedgeMode

	entryRequest := model.FuturesOrderRequest{
		Symbol:        symbol,
		Side:          position.EntrySide(),
		Type:          model.OrderTypeMarket,
		Quantity:      quantity,
		ClientOrderId: uuid.New().String(),
	}
	if hedgeMode {
		entryRequest.PositionSide = position.PositionSide()
	}

	entryOrder, err := e.Binance.CreateOrder(ctx, entryRequest)
	if err != nil {
		return summary, err
	}

	summary.EntryOrderId = entryOrder.OrderId
	summary.EntryClientOrderId = entryRequest.ClientOrderId
	summary.EntryPrice = entryOrder.GetFillPrice(currentPrice)
	summary.Notional, _ = decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(summary.EntryPrice)).Float64()
	summary.TakeProfitPrice = e.PriceCalculator.CalculateTakeProfitPrice(
		position,
		summary.EntryPrice,
		e.Config.TakeProfitPriceDiff,
		e.Config.TakeProfitPercentage,
		precision.PricePrecision,
	)

	takeProfitRequest := model.FuturesOrderRequest{
		Symbol:        symbol,
		Side:          position.ExitSide(),
		Type:          model.OrderTypeLimit,
		Quantity:      quantity,
		Price:         summary.TakeProfitPrice,
		TimeInForce:   model.TimeInForceGTC,
		PositionSide:  entryRequest.PositionSide,
		ClientOrderId: uuid.New().String(),
	}

	// the position is already open, an interrupt must not drop its exit order
	takeProfitOrder, err := e.Binance.CreateOrder(context.WithoutCancel(ctx), takeProfitRequest)
	if err != nil {
		log.Printf("[%s] Take profit order failed, position %s is unprotected: %s", symbol, position, err.Error())

		return summary, &model.UnprotectedPositionError{
			Entry:           entryOrder,
			TakeProfitPrice: summary.TakeProfitPrice,
			Err:             err,
		}
	}

	summary.TakeProfitOrderId = takeProfitOrder.OrderId
	summary.TakeProfitClientOrderId = takeProfitRequest.ClientOrderId

	return summary, nil
}
