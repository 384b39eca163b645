package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-futures-bot/src/client"
	"gitlab.com/open-soft/go-futures-bot/src/model"
	"gitlab.com/open-soft/go-futures-bot/src/utils"
)

type PrecisionServiceInterface interface {
	GetPrecision(ctx context.Context, symbol string) (model.SymbolPrecision, error)
}

type PrecisionService struct {
	Binance   client.ExchangeFuturesAPIInterface
	Formatter *utils.Formatter
	RDB       *redis.Client
	CacheTTL  time.Duration
}

func (p *PrecisionService) GetPrecision(ctx context.Context, symbol string) (model.SymbolPrecision, error) {
	cached := p.getCached(ctx, symbol)
	if cached != nil {
		return *cached, nil
	}

	exchangeInfo, err := p.Binance.GetExchangeData(ctx, []string{symbol})
	if err != nil {
		return model.SymbolPrecision{}, err
	}

	exchangeSymbol, err := exchangeInfo.GetSymbol(symbol)
	if err != nil {
		log.Printf("[%s] GetPrecision: %s", symbol, err.Error())
		return model.SymbolPrecision{}, model.NewTradeError(model.ErrorKindValidation, "GetPrecision", symbol, err)
	}

	precision := p.ToSymbolPrecision(*exchangeSymbol)
	p.saveCached(ctx, precision)

	return precision, nil
}

// ToSymbolPrecision derives decimals from LOT_SIZE and PRICE_FILTER, a missing filter means 0.
func (p *PrecisionService) ToSymbolPrecision(symbol model.ExchangeSymbol) model.SymbolPrecision {
	precision := model.SymbolPrecision{
		Symbol: strings.ToUpper(symbol.Symbol),
	}

	if lotSize := symbol.GetFilter(model.ExchangeFilterTypeLotSize); lotSize != nil && lotSize.StepSize != nil {
		precision.StepSize = *lotSize.StepSize
		precision.QuantityPrecision = p.Formatter.GetPrecision(*lotSize.StepSize)
	}

	if priceFilter := symbol.GetFilter(model.ExchangeFilterTypePrice); priceFilter != nil && priceFilter.TickSize != nil {
		precision.TickSize = *priceFilter.TickSize
		precision.PricePrecision = p.Formatter.GetPrecision(*priceFilter.TickSize)
	}

	if minNotional := symbol.GetFilter(model.ExchangeFilterTypeMinNotional); minNotional != nil && minNotional.MinNotional != nil {
		precision.MinNotional = *minNotional.MinNotional
	}

	return precision
}

func (p *PrecisionService) getCacheKey(symbol string) string {
	return fmt.Sprintf("futures-symbol-precision-%s", strings.ToUpper(symbol))
}

func (p *PrecisionService) getCached(ctx context.Context, symbol string) *model.SymbolPrecision {
	if p.RDB == nil {
		return nil
	}

	res := p.RDB.Get(ctx, p.getCacheKey(symbol)).Val()
	if len(res) == 0 {
		return nil
	}

	var precision model.SymbolPrecision
	err := json.Unmarshal([]byte(res), &precision)
	if err != nil {
		log.Printf("[%s] precision cache invalid: %s", symbol, err.Error())
		p.RDB.Del(ctx, p.getCacheKey(symbol))
		return nil
	}

	return &precision
}

func (p *PrecisionService) saveCached(ctx context.Context, precision model.SymbolPrecision) {
	if p.RDB == nil || p.CacheTTL <= 0 {
		return
	}

	encoded, err := json.Marshal(precision)
	if err != nil {
		return
	}

	err = p.RDB.Set(ctx, p.getCacheKey(precision.Symbol), string(encoded), p.CacheTTL).Err()
	if err != nil {
		log.Printf("[%s] precision cache write: %s", precision.Symbol, err.Error())
	}
}
