package errors

import (
	"fmt"

	"github.com/marketsync/seller-hub/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// MarketplaceError is the single failure surface of a marketplace
// connector: any non-success response, timeout or connection failure is
// wrapped into one of these. Connectors never retry; the next scheduled
// run is the retry mechanism.
type MarketplaceError struct {
	Marketplace string `json:"marketplace"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

func (e MarketplaceError) Error() string {
	return fmt.Sprintf("marketplace %s: %s (%s)", e.Marketplace, e.Message, e.Code)
}

func SetMarketplaceError(marketplace, code, message string) MarketplaceError {
	return MarketplaceError{
		Marketplace: marketplace,
		Code:        code,
		Message:     message,
	}
}
