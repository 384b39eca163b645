package exchange

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-futures-bot/src/model"
)

type ExchangeFuturesAPIMock struct {
	mock.Mock
}

func (m *ExchangeFuturesAPIMock) ChangeLeverage(ctx context.Context, symbol string, leverage int) (model.LeverageSettings, error) {
	args := m.Called(symbol, leverage)
	return args.Get(0).(model.LeverageSettings), args.Error(1)
}
func (m *ExchangeFuturesAPIMock) IsDualSidePosition(ctx context.Context) (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}
func (m *ExchangeFuturesAPIMock) GetTickerPrice(ctx context.Context, symbol string) (float64, error) {
	args := m.Called(symbol)
	return args.Get(0).(float64), args.Error(1)
}
func (m *ExchangeFuturesAPIMock) GetExchangeData(ctx context.Context, symbols []string) (*model.ExchangeInfo, error) {
	args := m.Called(symbols)
	info := args.Get(0)
	if info == nil {
		return nil, args.Error(1)
	}
	return info.(*model.ExchangeInfo), args.Error(1)
}
func (m *ExchangeFuturesAPIMock) CreateOrder(ctx context.Context, request model.FuturesOrderRequest) (model.FuturesOrder, error) {
	args := m.Called(request)
	return args.Get(0).(model.FuturesOrder), args.Error(1)
}

type PrecisionServiceMock struct {
	mock.Mock
}

func (m *PrecisionServiceMock) GetPrecision(ctx context.Context, symbol string) (model.SymbolPrecision, error) {
	args := m.Called(symbol)
	return args.Get(0).(model.SymbolPrecision), args.Error(1)
}

func floatPtr(value float64) *float64 {
	return &value
}

func steemExchangeInfo() *model.ExchangeInfo {
	return &model.ExchangeInfo{
		Timezone: "UTC",
		Symbols: []model.ExchangeSymbol{
			{
				Symbol:     "STEEMUSDT",
				Status:     "TRADING",
				BaseAsset:  "STEEM",
				QuoteAsset: "USDT",
				Filters: []model.ExchangeFilter{
					{FilterType: model.ExchangeFilterTypePrice, TickSize: floatPtr(0.0001)},
					{FilterType: model.ExchangeFilterTypeLotSize, StepSize: floatPtr(1)},
					{FilterType: model.ExchangeFilterTypeMinNotional, MinNotional: floatPtr(5)},
				},
			},
		},
	}
}
