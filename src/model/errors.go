package model

import (
	"errors"
	"fmt"
)

type ErrorKind string

const ErrorKindNetwork ErrorKind = "network"
const ErrorKindExchange ErrorKind = "exchange"
const ErrorKindValidation ErrorKind = "validation"
const ErrorKindPrecondition ErrorKind = "precondition"

var ErrSymbolNotFound = errors.New("trading pair not found in exchange info")
var ErrPriceUnavailable = errors.New("current price is unavailable")
var ErrZeroQuantity = errors.New("order quantity rounds to zero")
var ErrInvalidConfig = errors.New("invalid trade config")

type TradeError struct {
	Kind      ErrorKind
	Operation string
	Symbol    string
	Code      int64
	Err       error
}

func (e *TradeError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("[%s] %s: %s error %d: %s", e.Symbol, e.Operation, e.Kind, e.Code, e.Err.Error())
	}

	return fmt.Sprintf("[%s] %s: %s error: %s", e.Symbol, e.Operation, e.Kind, e.Err.Error())
}

func (e *TradeError) Unwrap() error {
	return e.Err
}

func NewTradeError(kind ErrorKind, operation string, symbol string, err error) *TradeError {
	return &TradeError{
		Kind:      kind,
		Operation: operation,
		Symbol:    symbol,
		Err:       err,
	}
}

// IsErrorKind reports whether any TradeError in the chain has the given kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	var tradeError *TradeError
	if errors.As(err, &tradeError) {
		return tradeError.Kind == kind
	}

	return false
}

// UnprotectedPositionError is returned when the entry order went through
// but the take-profit order did not: the position stays open without an exit.
type UnprotectedPositionError struct {
	Entry           FuturesOrder
	TakeProfitPrice float64
	Err             error
}

func (e *UnprotectedPositionError) Error() string {
	return fmt.Sprintf(
		"[%s] position %s %s is open without take profit at %s: %s",
		e.Entry.Symbol,
		e.Entry.Side,
		formatFloat(e.Entry.OrigQty),
		formatFloat(e.TakeProfitPrice),
		e.Err.Error(),
	)
}

func (e *UnprotectedPositionError) Unwrap() error {
	return e.Err
}
