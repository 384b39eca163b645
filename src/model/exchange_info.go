package model

import (
	"fmt"
	"strings"
)

const ExchangeFilterTypePrice = "PRICE_FILTER"
const ExchangeFilterTypeLotSize = "LOT_SIZE"
const ExchangeFilterTypeMinNotional = "MIN_NOTIONAL"

type ExchangeFilter struct {
	FilterType  string   `json:"filterType"`
	MinPrice    *float64 `json:"minPrice,string"`
	MaxPrice    *float64 `json:"maxPrice,string"`
	TickSize    *float64 `json:"tickSize,string"`
	MinQuantity *float64 `json:"minQty,string"`
	MaxQuantity *float64 `json:"maxQty,string"`
	StepSize    *float64 `json:"stepSize,string"`
	MinNotional *float64 `json:"notional,string"`
}

type ExchangeSymbol struct {
	Symbol            string           `json:"symbol"`
	Status            string           `json:"status"`
	BaseAsset         string           `json:"baseAsset"`
	QuoteAsset        string           `json:"quoteAsset"`
	PricePrecision    int              `json:"pricePrecision"`
	QuantityPrecision int              `json:"quantityPrecision"`
	Filters           []ExchangeFilter `json:"filters"`
}

func (e *ExchangeSymbol) IsTrading() bool {
	return e.Status == "TRADING"
}

func (e *ExchangeSymbol) GetFilter(filterType string) *ExchangeFilter {
	for index := range e.Filters {
		if e.Filters[index].FilterType == filterType {
			return &e.Filters[index]
		}
	}

	return nil
}

type ExchangeInfo struct {
	Timezone   string           `json:"timezone"`
	ServerTime int64            `json:"serverTime"`
	Symbols    []ExchangeSymbol `json:"symbols"`
}

func (e *ExchangeInfo) GetSymbol(symbol string) (*ExchangeSymbol, error) {
	for index := range e.Symbols {
		if strings.EqualFold(e.Symbols[index].Symbol, symbol) {
			return &e.Symbols[index], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
}

type SymbolPrecision struct {
	Symbol            string  `json:"symbol"`
	QuantityPrecision int     `json:"quantityPrecision"`
	PricePrecision    int     `json:"pricePrecision"`
	StepSize          float64 `json:"stepSize"`
	TickSize          float64 `json:"tickSize"`
	MinNotional       float64 `json:"minNotional"`
}

type LeverageSettings struct {
	Symbol           string  `json:"symbol"`
	Leverage         int     `json:"leverage"`
	MaxNotionalValue float64 `json:"maxNotionalValue"`
}
