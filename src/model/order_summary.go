package model

import (
	"fmt"
	"strconv"
)

type OrderSummary struct {
	PositionType            PositionType `json:"type"`
	Symbol                  string       `json:"symbol"`
	Leverage                int          `json:"leverage"`
	Margin                  float64      `json:"margin"`
	EntryPrice              float64      `json:"entryPrice"`
	TakeProfitPrice         float64      `json:"takeProfitPrice"`
	Quantity                float64      `json:"quantity"`
	QuantityAdjusted        bool         `json:"quantityAdjusted"`
	MinNotional             float64      `json:"minNotional"`
	Notional                float64      `json:"notional"`
	HedgeMode               bool         `json:"hedgeMode"`
	EntryOrderId            int64        `json:"entryOrderId"`
	TakeProfitOrderId       int64        `json:"takeProfitOrderId"`
	EntryClientOrderId      string       `json:"entryClientOrderId"`
	TakeProfitClientOrderId string       `json:"takeProfitClientOrderId"`
}

func (s OrderSummary) String() string {
	text := fmt.Sprintf(
		"\nOrder Summary:\nType: %s\nLeverage: %dx\nMargin: %s USD\nEntry Price: %s USD\nTake Profit Price: %s USD\nQuantity: %s",
		s.PositionType,
		s.Leverage,
		formatFloat(s.Margin),
		formatFloat(s.EntryPrice),
		formatFloat(s.TakeProfitPrice),
		formatFloat(s.Quantity),
	)

	// margin no longer matches the order size once the floor kicked in
	if s.QuantityAdjusted {
		text += fmt.Sprintf(
			"\nNotional: %s USD (adjusted to meet minimum notional value of %s USD)",
			formatFloat(s.Notional),
			formatFloat(s.MinNotional),
		)
	}

	return text
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
