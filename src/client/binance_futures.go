package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"gitlab.com/open-soft/go-futures-bot/src/model"
	"gitlab.com/open-soft/go-futures-bot/src/utils"
)

type ExchangeFuturesAPIInterface interface {
	ChangeLeverage(ctx context.Context, symbol string, leverage int) (model.LeverageSettings, error)
	IsDualSidePosition(ctx context.Context) (bool, error)
	GetTickerPrice(ctx context.Context, symbol string) (float64, error)
	GetExchangeData(ctx context.Context, symbols []string) (*model.ExchangeInfo, error)
	CreateOrder(ctx context.Context, request model.FuturesOrderRequest) (model.FuturesOrder, error)
}

type BinanceFutures struct {
	Client    *futures.Client
	Formatter *utils.Formatter
}

func NewBinanceFutures(config model.TradeConfig, formatter *utils.Formatter) *BinanceFutures {
	futures.UseTestnet = config.UseTestnet
	futuresClient := futures.NewClient(config.ApiKey, config.ApiSecret)
	if config.FuturesDSN != "" {
		futuresClient.BaseURL = config.FuturesDSN
	}

	return &BinanceFutures{
		Client:    futuresClient,
		Formatter: formatter,
	}
}

func (b *BinanceFutures) ChangeLeverage(ctx context.Context, symbol string, leverage int) (model.LeverageSettings, error) {
	result, err := b.Client.NewChangeLeverageService().Symbol(symbol).Leverage(leverage).Do(ctx)
	if err != nil {
		log.Printf("[%s] ChangeLeverage: %s", symbol, err.Error())
		return model.LeverageSettings{}, b.wrapError("ChangeLeverage", symbol, err)
	}

	maxNotional, err := b.Formatter.ParseDecimal(result.MaxNotionalValue)
	if err != nil {
		log.Printf("[%s] ChangeLeverage: %s", symbol, err.Error())
	}

	return model.LeverageSettings{
		Symbol:           result.Symbol,
		Leverage:         result.Leverage,
		MaxNotionalValue: maxNotional,
	}, nil
}

func (b *BinanceFutures) IsDualSidePosition(ctx context.Context) (bool, error) {
	positionMode, err := b.Client.NewGetPositionModeService().Do(ctx)
	if err != nil {
		log.Printf("GetPositionMode: %s", err.Error())
		return false, b.wrapError("GetPositionMode", "", err)
	}

	return positionMode.DualSidePosition, nil
}

func (b *BinanceFutures) GetTickerPrice(ctx context.Context, symbol string) (float64, error) {
	prices, err := b.Client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		log.Printf("[%s] GetTickerPrice: %s", symbol, err.Error())
		return 0, b.wrapError("GetTickerPrice", symbol, err)
	}

	for _, price := range prices {
		if !strings.EqualFold(price.Symbol, symbol) {
			continue
		}

		value, err := b.Formatter.ParseDecimal(price.Price)
		if err != nil {
			return 0, model.NewTradeError(model.ErrorKindPrecondition, "GetTickerPrice", symbol, fmt.Errorf("%w: %s", model.ErrPriceUnavailable, err.Error()))
		}

		if value <= 0 {
			return 0, model.NewTradeError(model.ErrorKindPrecondition, "GetTickerPrice", symbol, model.ErrPriceUnavailable)
		}

		return value, nil
	}

	return 0, model.NewTradeError(model.ErrorKindPrecondition, "GetTickerPrice", symbol, model.ErrPriceUnavailable)
}

func (b *BinanceFutures) GetExchangeData(ctx context.Context, symbols []string) (*model.ExchangeInfo, error) {
	exchangeInfo, err := b.Client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		log.Printf("GetExchangeData: %s", err.Error())
		return nil, b.wrapError("GetExchangeData", strings.Join(symbols, ","), err)
	}

	exchangeSymbols := make([]model.ExchangeSymbol, 0)
	for index := range exchangeInfo.Symbols {
		futuresSymbol := &exchangeInfo.Symbols[index]
		if len(symbols) > 0 && !containsFold(symbols, futuresSymbol.Symbol) {
			continue
		}

		exchangeSymbols = append(exchangeSymbols, b.toExchangeSymbol(futuresSymbol))
	}

	return &model.ExchangeInfo{
		Timezone:   exchangeInfo.Timezone,
		ServerTime: exchangeInfo.ServerTime,
		Symbols:    exchangeSymbols,
	}, nil
}

func (b *BinanceFutures) CreateOrder(ctx context.Context, request model.FuturesOrderRequest) (model.FuturesOrder, error) {
	service := b.Client.NewCreateOrderService().
		Symbol(request.Symbol).
		Side(futures.SideType(request.Side)).
		Type(futures.OrderType(request.Type)).
		Quantity(b.Formatter.FormatDecimal(request.Quantity)).
		NewOrderResponseType(futures.NewOrderRespTypeRESULT)

	if request.ClientOrderId != "" {
		service.NewClientOrderID(request.ClientOrderId)
	}

	if request.PositionSide != "" {
		service.PositionSide(futures.PositionSideType(request.PositionSide))
	}

	if request.IsLimit() {
		service.Price(b.Formatter.FormatDecimal(request.Price))
		service.TimeInForce(futures.TimeInForceType(request.TimeInForce))
	}

	response, err := service.Do(ctx)
	if err != nil {
		log.Printf(
			"[%s] CreateOrder %s %s %s: %s",
			request.Symbol,
			request.Type,
			request.Side,
			b.Formatter.FormatDecimal(request.Quantity),
			err.Error(),
		)

		return model.FuturesOrder{}, b.wrapError("CreateOrder", request.Symbol, err)
	}

	return b.toFuturesOrder(response), nil
}

func (b *BinanceFutures) toFuturesOrder(response *futures.CreateOrderResponse) model.FuturesOrder {
	price, _ := b.Formatter.ParseDecimal(response.Price)
	avgPrice, _ := b.Formatter.ParseDecimal(response.AvgPrice)
	origQty, _ := b.Formatter.ParseDecimal(response.OrigQuantity)
	executedQty, _ := b.Formatter.ParseDecimal(response.ExecutedQuantity)

	return model.FuturesOrder{
		OrderId:       response.OrderID,
		ClientOrderId: response.ClientOrderID,
		Symbol:        response.Symbol,
		Price:         price,
		AvgPrice:      avgPrice,
		OrigQty:       origQty,
		ExecutedQty:   executedQty,
		Status:        string(response.Status),
		Type:          string(response.Type),
		Side:          string(response.Side),
		PositionSide:  string(response.PositionSide),
		TimeInForce:   string(response.TimeInForce),
		UpdateTime:    response.UpdateTime,
	}
}

func (b *BinanceFutures) toExchangeSymbol(symbol *futures.Symbol) model.ExchangeSymbol {
	filters := make([]model.ExchangeFilter, 0)

	if priceFilter := symbol.PriceFilter(); priceFilter != nil {
		minPrice, _ := b.Formatter.ParseDecimal(priceFilter.MinPrice)
		maxPrice, _ := b.Formatter.ParseDecimal(priceFilter.MaxPrice)
		tickSize, _ := b.Formatter.ParseDecimal(priceFilter.TickSize)
		filters = append(filters, model.ExchangeFilter{
			FilterType: model.ExchangeFilterTypePrice,
			MinPrice:   &minPrice,
			MaxPrice:   &maxPrice,
			TickSize:   &tickSize,
		})
	}

	if lotSizeFilter := symbol.LotSizeFilter(); lotSizeFilter != nil {
		minQuantity, _ := b.Formatter.ParseDecimal(lotSizeFilter.MinQuantity)
		maxQuantity, _ := b.Formatter.ParseDecimal(lotSizeFilter.MaxQuantity)
		stepSize, _ := b.Formatter.ParseDecimal(lotSizeFilter.StepSize)
		filters = append(filters, model.ExchangeFilter{
			FilterType:  model.ExchangeFilterTypeLotSize,
			MinQuantity: &minQuantity,
			MaxQuantity: &maxQuantity,
			StepSize:    &stepSize,
		})
	}

	if minNotionalFilter := symbol.MinNotionalFilter(); minNotionalFilter != nil {
		minNotional, _ := b.Formatter.ParseDecimal(minNotionalFilter.Notional)
		filters = append(filters, model.ExchangeFilter{
			FilterType:  model.ExchangeFilterTypeMinNotional,
			MinNotional: &minNotional,
		})
	}

	return model.ExchangeSymbol{
		Symbol:            symbol.Symbol,
		Status:            symbol.Status,
		BaseAsset:         symbol.BaseAsset,
		QuoteAsset:        symbol.QuoteAsset,
		PricePrecision:    symbol.PricePrecision,
		QuantityPrecision: symbol.QuantityPrecision,
		Filters:           filters,
	}
}

// wrapError splits exchange rejections from transport failures.
func (b *BinanceFutures) wrapError(operation string, symbol string, err error) error {
	var apiError *common.APIError
	if errors.As(err, &apiError) {
		tradeError := model.NewTradeError(model.ErrorKindExchange, operation, symbol, errors.New(apiError.Message))
		tradeError.Code = apiError.Code

		return tradeError
	}

	return model.NewTradeError(model.ErrorKindNetwork, operation, symbol, err)
}

func containsFold(values []string, value string) bool {
	for _, item := range values {
		if strings.EqualFold(item, value) {
			return true
		}
	}

	return false
}
