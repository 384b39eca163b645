package model

const OrderTypeMarket = "MARKET"
const OrderTypeLimit = "LIMIT"

const TimeInForceGTC = "GTC"

const ExchangeOrderStatusNew = "NEW"

type FuturesOrderRequest struct {
	Symbol        string
	Side          string
	Type          string
	Quantity      float64
	Price         float64
	TimeInForce   string
	PositionSide  string
	ClientOrderId string
}

func (r FuturesOrderRequest) IsLimit() bool {
	return r.Type == OrderTypeLimit
}

type FuturesOrder struct {
	OrderId       int64   `json:"orderId"`
	ClientOrderId string  `json:"clientOrderId"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	AvgPrice      float64 `json:"avgPrice"`
	OrigQty       float64 `json:"origQty"`
	ExecutedQty   float64 `json:"executedQty"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	Side          string  `json:"side"`
	PositionSide  string  `json:"positionSide"`
	TimeInForce   string  `json:"timeInForce"`
	UpdateTime    int64   `json:"updateTime"`
}

func (o *FuturesOrder) IsBuy() bool {
	return o.Side == SideBuy
}

func (o *FuturesOrder) IsSell() bool {
	return o.Side == SideSell
}

func (o *FuturesOrder) IsNew() bool {
	return o.Status == ExchangeOrderStatusNew
}

func (o *FuturesOrder) IsFilled() bool {
	return o.Status == "FILLED"
}

func (o *FuturesOrder) IsPartiallyFilled() bool {
	return o.Status == "PARTIALLY_FILLED"
}

func (o *FuturesOrder) HasExecutedQuantity() bool {
	return o.ExecutedQty > 0
}

// GetFillPrice falls back to the given price when the exchange did not report an average.
func (o *FuturesOrder) GetFillPrice(fallback float64) float64 {
	if o.AvgPrice > 0 {
		return o.AvgPrice
	}

	return fallback
}
