package usecases_test

import (
	"context"
	"math/big"
	"time"

	"github.com/stretchr/testify/mock"

	"walletwave.backend/internal/domain/entities"
	"walletwave.backend/pkg/logger"
)

func init() {
	logger.Init("test")
}

// Mock PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) GetPayment(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRecord), args.Error(1)
}

func (m *MockPaymentGateway) IsPaymentValid(ctx context.Context, paymentID string) (bool, error) {
	args := m.Called(ctx, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentGateway) GetMerchantPayments(ctx context.Context, merchant string) ([]string, error) {
	args := m.Called(ctx, merchant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPaymentGateway) CreatePayment(ctx context.Context, token string, amountUSD *big.Int, duration int64) (string, error) {
	args := m.Called(ctx, token, amountUSD, duration)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, paymentID string, value *big.Int) (string, error) {
	args := m.Called(ctx, paymentID, value)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) ProcessTokenPayment(ctx context.Context, paymentID string, amount *big.Int) (string, error) {
	args := m.Called(ctx, paymentID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) WaitConfirmed(ctx context.Context, txHash string) error {
	args := m.Called(ctx, txHash)
	return args.Error(0)
}

// Mock MerchantRegistry
type MockMerchantRegistry struct {
	mock.Mock
}

func (m *MockMerchantRegistry) IsMerchantActive(ctx context.Context, merchant string) (bool, error) {
	args := m.Called(ctx, merchant)
	return args.Bool(0), args.Error(1)
}

func (m *MockMerchantRegistry) RegisterMerchant(ctx context.Context, name, email string) (string, error) {
	args := m.Called(ctx, name, email)
	return args.String(0), args.Error(1)
}

func (m *MockMerchantRegistry) WaitConfirmed(ctx context.Context, txHash string) error {
	args := m.Called(ctx, txHash)
	return args.Error(0)
}

// Mock PriceOracle
type MockPriceOracle struct {
	mock.Mock
}

func (m *MockPriceOracle) GetPrice(ctx context.Context, token string) (*big.Int, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// Mock PaymentMirror
type MockPaymentMirror struct {
	mock.Mock
}

func (m *MockPaymentMirror) GetRecord(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRecord), args.Error(1)
}

func (m *MockPaymentMirror) PutRecord(ctx context.Context, record *entities.PaymentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPaymentMirror) Invalidate(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentMirror) GetMerchantPaymentIDs(ctx context.Context, merchant string) ([]string, error) {
	args := m.Called(ctx, merchant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPaymentMirror) PutMerchantPaymentIDs(ctx context.Context, merchant string, ids []string) error {
	args := m.Called(ctx, merchant, ids)
	return args.Error(0)
}

func (m *MockPaymentMirror) InvalidateMerchant(ctx context.Context, merchant string) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockPaymentMirror) GetMerchantActive(ctx context.Context, merchant string) (bool, bool, error) {
	args := m.Called(ctx, merchant)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockPaymentMirror) PutMerchantActive(ctx context.Context, merchant string, active bool) error {
	args := m.Called(ctx, merchant, active)
	return args.Error(0)
}

func (m *MockPaymentMirror) InvalidateMerchantActive(ctx context.Context, merchant string) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockPaymentMirror) PendingPastExpiry(ctx context.Context, now time.Time) ([]string, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPaymentMirror) RemoveFromPendingIndex(ctx context.Context, paymentIDs ...string) error {
	args := m.Called(ctx, paymentIDs)
	return args.Error(0)
}

func (m *MockPaymentMirror) MarkLinkCopied(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentMirror) IsLinkCopied(ctx context.Context, paymentID string) (bool, error) {
	args := m.Called(ctx, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentMirror) MarkSubmitted(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentMirror) IsSubmitted(ctx context.Context, paymentID string) (bool, error) {
	args := m.Called(ctx, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentMirror) ClearSubmitted(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// Mock PreferencesRepository
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Get(ctx context.Context, wallet string) (*entities.Preferences, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Preferences), args.Error(1)
}

func (m *MockPreferencesRepository) Put(ctx context.Context, wallet string, prefs *entities.Preferences) error {
	args := m.Called(ctx, wallet, prefs)
	return args.Error(0)
}
