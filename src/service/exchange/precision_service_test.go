package exchange

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-futures-bot/src/model"
	"gitlab.com/open-soft/go-futures-bot/src/utils"
)

func TestShouldDeriveSymbolPrecisionFromFilters(t *testing.T) {
	assertion := assert.New(t)

	binanceMock := new(ExchangeFuturesAPIMock)
	binanceMock.On("GetExchangeData", []string{"STEEMUSDT"}).Return(steemExchangeInfo(), nil)

	precisionService := PrecisionService{
		Binance:   binanceMock,
		Formatter: &utils.Formatter{},
	}

	precision, err := precisionService.GetPrecision(context.Background(), "STEEMUSDT")
	assertion.Nil(err)
	assertion.Equal("STEEMUSDT", precision.Symbol)
	assertion.Equal(0, precision.QuantityPrecision)
	assertion.Equal(4, precision.PricePrecision)
	assertion.Equal(1.0, precision.StepSize)
	assertion.Equal(0.0001, precision.TickSize)
	assertion.Equal(5.0, precision.MinNotional)
	binanceMock.AssertExpectations(t)
}

func TestShouldUseZeroPrecisionWhenFilterIsMissing(t *testing.T) {
	assertion := assert.New(t)

	precisionService := PrecisionService{
		Formatter: &utils.Formatter{},
	}

	precision := precisionService.ToSymbolPrecision(model.ExchangeSymbol{
		Symbol: "btcusdt",
		Filters: []model.ExchangeFilter{
			{FilterType: model.ExchangeFilterTypeLotSize, StepSize: floatPtr(0.001)},
		},
	})
	assertion.Equal("BTCUSDT", precision.Symbol)
	assertion.Equal(3, precision.QuantityPrecision)
	assertion.Equal(0, precision.PricePrecision)
	assertion.Equal(0.0, precision.MinNotional)
}

func TestShouldFailWhenSymbolIsNotListed(t *testing.T) {
	assertion := assert.New(t)

	binanceMock := new(ExchangeFuturesAPIMock)
	binanceMock.On("GetExchangeData", []string{"FOOUSDT"}).Return(&model.ExchangeInfo{}, nil)

	precisionService := PrecisionService{
		Binance:   binanceMock,
		Formatter: &utils.Formatter{},
	}

	_, err := precisionService.GetPrecision(context.Background(), "FOOUSDT")
	assertion.True(errors.Is(err, model.ErrSymbolNotFound))
	assertion.True(model.IsErrorKind(err, model.ErrorKindValidation))
}

func TestShouldPropagateExchangeInfoFailure(t *testing.T) {
	assertion := assert.New(t)

	networkError := model.NewTradeError(model.ErrorKindNetwork, "GetExchangeData", "STEEMUSDT", errors.New("connection reset by peer"))
	binanceMock := new(ExchangeFuturesAPIMock)
	binanceMock.On("GetExchangeData", []string{"STEEMUSDT"}).Return(nil, networkError)

	precisionService := PrecisionService{
		Binance:   binanceMock,
		Formatter: &utils.Formatter{},
	}

	_, err := precisionService.GetPrecision(context.Background(), "STEEMUSDT")
	assertion.Equal(networkError, err)
	assertion.True(model.IsErrorKind(err, model.ErrorKindNetwork))
}
