package usecases

import (
	"context"
	"math/big"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/domain/repositories"
	"walletwave.backend/pkg/logger"
)

// SettlementUsecase handles the customer-facing payment page: resolving a
// link to its current state and settling it.
type SettlementUsecase struct {
	gateway repositories.PaymentGateway
	mirror  repositories.PaymentMirror
	tokens  *entities.TokenRegistry
	reader  recordReader
}

// NewSettlementUsecase creates a new settlement usecase
func NewSettlementUsecase(
	gateway repositories.PaymentGateway,
	mirror repositories.PaymentMirror,
	tokens *entities.TokenRegistry,
) *SettlementUsecase {
	return &SettlementUsecase{
		gateway: gateway,
		mirror:  mirror,
		tokens:  tokens,
		reader:  recordReader{gateway: gateway, mirror: mirror},
	}
}

// View resolves a payment link to its display state. A pending record with
// an active settlement marker is shown as submitted until the mirror
// observes the on-chain transition.
func (u *SettlementUsecase) View(ctx context.Context, paymentID string) (*entities.SettlementView, error) {
	if strings.TrimSpace(paymentID) == "" {
		return nil, domainerrors.BadRequest("payment id is required")
	}

	record, err := u.reader.read(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if record.IsZero() {
		return nil, domainerrors.NotFound("payment request not found")
	}

	now := time.Now()
	status := entities.DeriveDisplayStatus(record, now)

	submitted, err := u.mirror.IsSubmitted(ctx, record.ID)
	if err != nil {
		logger.Warn(ctx, "failed to read settlement marker",
			zap.String("payment_id", record.ID), zap.Error(err))
	}
	if submitted {
		if status == entities.PaymentStatusPending {
			status = entities.PaymentStatusSubmitted
		} else if err := u.mirror.ClearSubmitted(ctx, record.ID); err != nil {
			logger.Warn(ctx, "failed to clear settlement marker",
				zap.String("payment_id", record.ID), zap.Error(err))
		}
	}

	timeLeft := record.TimeLeft(now)
	return &entities.SettlementView{
		ID:        record.ID,
		Status:    status,
		Merchant:  record.Merchant,
		Customer:  record.Customer,
		Token:     u.tokens.SymbolFor(record.Token),
		Amount:    record.Amount,
		AmountUSD: entities.FormatUSD(record.AmountUSD),
		ExpiresAt: record.ExpiresAt,
		TimeLeft:  timeLeft,
		Countdown: entities.FormatCountdown(timeLeft),
	}, nil
}

// Settle submits the settlement for a pending link. The paid amount is the
// exact on-chain figure, read fresh; the link is re-validated right before
// submission so a just-expired link fails here instead of on-chain.
func (u *SettlementUsecase) Settle(ctx context.Context, session Session, paymentID string) (*entities.SettleResponse, error) {
	if !session.Connected() {
		return nil, domainerrors.WalletNotConnected()
	}
	if strings.TrimSpace(paymentID) == "" {
		return nil, domainerrors.BadRequest("payment id is required")
	}

	record, err := u.reader.readFresh(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if record.IsZero() {
		return nil, domainerrors.NotFound("payment request not found")
	}

	if entities.DeriveDisplayStatus(record, time.Now()) != entities.PaymentStatusPending {
		return nil, domainerrors.NewAppError(http.StatusConflict,
			"payment is no longer payable", domainerrors.ErrPaymentNotPending)
	}
	valid, err := u.gateway.IsPaymentValid(ctx, record.ID)
	if err != nil {
		return nil, domainerrors.ContractFailure(err)
	}
	if !valid {
		return nil, domainerrors.NewAppError(http.StatusConflict,
			"payment link is no longer valid", domainerrors.ErrPaymentInvalid)
	}

	amount, ok := new(big.Int).SetString(record.Amount, 10)
	if !ok {
		return nil, domainerrors.InternalError(domainerrors.ErrPaymentInvalid)
	}

	var txHash string
	if u.tokens.IsNative(record.Token) {
		txHash, err = u.gateway.ProcessPayment(ctx, record.ID, amount)
	} else {
		txHash, err = u.gateway.ProcessTokenPayment(ctx, record.ID, amount)
	}
	if err != nil {
		return nil, domainerrors.ContractFailure(err)
	}
	if err := u.gateway.WaitConfirmed(ctx, txHash); err != nil {
		return nil, domainerrors.ContractFailure(err)
	}

	if err := u.mirror.MarkSubmitted(ctx, record.ID); err != nil {
		logger.Warn(ctx, "failed to set settlement marker",
			zap.String("payment_id", record.ID), zap.Error(err))
	}
	if err := u.mirror.Invalidate(ctx, record.ID); err != nil {
		logger.Warn(ctx, "failed to invalidate settled payment",
			zap.String("payment_id", record.ID), zap.Error(err))
	}

	logger.Info(ctx, "payment settled",
		zap.String("payment_id", record.ID),
		zap.String("customer", session.Address),
		zap.String("tx_hash", txHash))
	return &entities.SettleResponse{
		TxHash: txHash,
		Status: entities.PaymentStatusSubmitted,
	}, nil
}
