package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrMerchantNotActive  = errors.New("merchant not active")
	ErrPaymentNotPending  = errors.New("payment not pending")
	ErrPaymentInvalid     = errors.New("payment link no longer valid")
	ErrContractCall       = errors.New("contract call failed")
	ErrUnsupportedToken   = errors.New("unsupported token")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

// WalletNotConnected covers actions attempted without a bound wallet
// session; no contract call is made on this path.
func WalletNotConnected() *AppError {
	return NewAppError(http.StatusUnauthorized, "connect your wallet first", ErrWalletNotConnected)
}

// ContractFailure covers rejected or reverted contract calls. The caller's
// form state is preserved for a manual retry; nothing is retried here.
func ContractFailure(err error) *AppError {
	return NewAppError(http.StatusBadGateway, "contract call failed", errors.Join(ErrContractCall, err))
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
