package repositories

import (
	"context"
	"math/big"
	"time"

	"walletwave.backend/internal/domain/entities"
)

// PaymentGateway is the application's view of the deployed payment gateway.
type PaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (*entities.PaymentRecord, error)
	IsPaymentValid(ctx context.Context, paymentID string) (bool, error)
	GetMerchantPayments(ctx context.Context, merchant string) ([]string, error)
	CreatePayment(ctx context.Context, token string, amountUSD *big.Int, duration int64) (string, error)
	ProcessPayment(ctx context.Context, paymentID string, value *big.Int) (string, error)
	ProcessTokenPayment(ctx context.Context, paymentID string, amount *big.Int) (string, error)
	WaitConfirmed(ctx context.Context, txHash string) error
}

// MerchantRegistry is the application's view of the merchant registry.
type MerchantRegistry interface {
	IsMerchantActive(ctx context.Context, merchant string) (bool, error)
	RegisterMerchant(ctx context.Context, name, email string) (string, error)
	WaitConfirmed(ctx context.Context, txHash string) error
}

// PriceOracle reads display-only USD prices with 8 implied decimals.
type PriceOracle interface {
	GetPrice(ctx context.Context, token string) (*big.Int, error)
}

// PaymentMirror is the staleness-bounded local mirror of on-chain state.
// Nil or absent results mean "stale, re-read the chain", never "not found".
type PaymentMirror interface {
	GetRecord(ctx context.Context, paymentID string) (*entities.PaymentRecord, error)
	PutRecord(ctx context.Context, record *entities.PaymentRecord) error
	Invalidate(ctx context.Context, paymentID string) error

	GetMerchantPaymentIDs(ctx context.Context, merchant string) ([]string, error)
	PutMerchantPaymentIDs(ctx context.Context, merchant string, ids []string) error
	InvalidateMerchant(ctx context.Context, merchant string) error

	GetMerchantActive(ctx context.Context, merchant string) (bool, bool, error)
	PutMerchantActive(ctx context.Context, merchant string, active bool) error
	InvalidateMerchantActive(ctx context.Context, merchant string) error

	PendingPastExpiry(ctx context.Context, now time.Time) ([]string, error)
	RemoveFromPendingIndex(ctx context.Context, paymentIDs ...string) error

	MarkLinkCopied(ctx context.Context, paymentID string) error
	IsLinkCopied(ctx context.Context, paymentID string) (bool, error)

	MarkSubmitted(ctx context.Context, paymentID string) error
	IsSubmitted(ctx context.Context, paymentID string) (bool, error)
	ClearSubmitted(ctx context.Context, paymentID string) error
}

// PreferencesRepository stores session-scoped dashboard preferences.
type PreferencesRepository interface {
	Get(ctx context.Context, wallet string) (*entities.Preferences, error)
	Put(ctx context.Context, wallet string, prefs *entities.Preferences) error
}
