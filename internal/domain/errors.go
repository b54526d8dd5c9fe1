package domain

import (
	"errors"
	"fmt"
)

// Stable machine-readable error codes. The code string is the only part of
// an error external callers may depend on programmatically.
const (
	ErrCodeAssetPairInvalid       = "ERR_ASSET_PAIR_INVALID"
	ErrCodeAssetPairUnsupported   = "ERR_ASSET_PAIR_UNSUPPORTED"
	ErrCodeCustomerIDMissing      = "ERR_CUSTOMER_ID_MISSING"
	ErrCodeExchangeIDMissing      = "ERR_EXCHANGE_ID_MISSING"
	ErrCodeQuoteIDInvalid         = "ERR_QUOTE_ID_INVALID"
	ErrCodeOrderIDInvalid         = "ERR_ORDER_ID_INVALID"
	ErrCodeOrderSideInvalid       = "ERR_ORDER_SIDE_INVALID"
	ErrCodeOrderTypeInvalid       = "ERR_ORDER_TYPE_INVALID"
	ErrCodeOrderTypeUnsupported   = "ERR_ORDER_TYPE_UNSUPPORTED"
	ErrCodeOrderPriceInvalid      = "ERR_ORDER_PRICE_INVALID"
	ErrCodeOrderPricePrecision    = "ERR_ORDER_PRICE_PRECISION"
	ErrCodeOrderQuantityInvalid   = "ERR_ORDER_QUANTITY_INVALID"
	ErrCodeOrderQuantityPrecision = "ERR_ORDER_QUANTITY_PRECISION"
	ErrCodeOrderFilledInvalid     = "ERR_ORDER_FILLED_INVALID"
	ErrCodeOrderStateInvalid      = "ERR_ORDER_STATE_INVALID"
	ErrCodeOrderNotFound          = "ERR_ORDER_NOT_FOUND"
	ErrCodeOTCPriceMismatch       = "ERR_OTC_PRICE_MISMATCH"
	ErrCodeOTCQuantityMismatch    = "ERR_OTC_QUANTITY_MISMATCH"
	ErrCodeTradeQuantityInvalid   = "ERR_TRADE_QUANTITY_INVALID"
	ErrCodeAlgorithmUnknown       = "ERR_MATCHING_ALGORITHM_UNKNOWN"
)

// Error is the single error type used across the engine. Every rejection
// carries one stable code from the catalogue above plus a human-readable
// message.
type Error struct {
	Code    string
	Message string
}

func NewError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches on code equality so call sites can use errors.Is against a
// bare &Error{Code: ...} sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// ErrorCode returns the code carried by err, or "" when err is not an
// engine error.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
