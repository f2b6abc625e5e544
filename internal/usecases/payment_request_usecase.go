package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/domain/repositories"
	"walletwave.backend/pkg/logger"
)

// PaymentRequestUsecase handles merchant-side payment link creation and
// listing.
type PaymentRequestUsecase struct {
	gateway   repositories.PaymentGateway
	mirror    repositories.PaymentMirror
	merchants *MerchantUsecase
	tokens    *entities.TokenRegistry
	publicURL string
	reader    recordReader
}

// NewPaymentRequestUsecase creates a new payment request usecase
func NewPaymentRequestUsecase(
	gateway repositories.PaymentGateway,
	mirror repositories.PaymentMirror,
	merchants *MerchantUsecase,
	tokens *entities.TokenRegistry,
	publicURL string,
) *PaymentRequestUsecase {
	return &PaymentRequestUsecase{
		gateway:   gateway,
		mirror:    mirror,
		merchants: merchants,
		tokens:    tokens,
		publicURL: strings.TrimRight(publicURL, "/"),
		reader:    recordReader{gateway: gateway, mirror: mirror},
	}
}

// Create validates and submits a payment-request creation. Checks run in a
// fixed order: wallet session, amount, merchant gate, token, duration. The
// merchant gate is not an error; it redirects the caller to onboarding.
func (u *PaymentRequestUsecase) Create(ctx context.Context, session Session, input *entities.CreateRequestInput) (*entities.CreateRequestResponse, error) {
	if !session.Connected() {
		return nil, domainerrors.WalletNotConnected()
	}

	amountUSD, err := entities.ParseUSDAmount(input.Amount)
	if err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}

	active, err := u.merchants.IsActive(ctx, session.Address)
	if err != nil {
		return nil, err
	}
	if !active {
		return &entities.CreateRequestResponse{RegistrationRequired: true}, nil
	}

	tokenAddr, ok := u.tokens.AddressFor(input.Token)
	if !ok {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unsupported token %q", input.Token))
	}
	if !entities.IsValidDuration(input.Duration) {
		return nil, domainerrors.BadRequest(fmt.Sprintf("unsupported validity duration %d", input.Duration))
	}

	txHash, err := u.gateway.CreatePayment(ctx, tokenAddr, amountUSD, input.Duration)
	if err != nil {
		return nil, domainerrors.ContractFailure(err)
	}
	if err := u.gateway.WaitConfirmed(ctx, txHash); err != nil {
		return nil, domainerrors.ContractFailure(err)
	}

	// The new link shows up on the next list read.
	if err := u.mirror.InvalidateMerchant(ctx, session.Address); err != nil {
		logger.Warn(ctx, "failed to invalidate merchant payment list",
			zap.String("wallet", session.Address), zap.Error(err))
	}

	logger.Info(ctx, "payment request created",
		zap.String("wallet", session.Address),
		zap.String("tx_hash", txHash),
		zap.Int64("duration", input.Duration))
	return &entities.CreateRequestResponse{TxHash: txHash}, nil
}

// List returns the session wallet's payment links sorted with actionable
// items first.
func (u *PaymentRequestUsecase) List(ctx context.Context, session Session) ([]*entities.PaymentLinkView, error) {
	if !session.Connected() {
		return nil, domainerrors.WalletNotConnected()
	}

	ids, err := u.paymentIDs(ctx, session.Address)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	records := make([]*entities.PaymentRecord, 0, len(ids))
	for _, id := range ids {
		record, err := u.reader.read(ctx, id)
		if err != nil {
			return nil, err
		}
		if record.IsZero() {
			continue
		}
		records = append(records, record)
	}
	entities.SortByUrgency(records, now)

	views := make([]*entities.PaymentLinkView, 0, len(records))
	for _, record := range records {
		copied, err := u.mirror.IsLinkCopied(ctx, record.ID)
		if err != nil {
			logger.Warn(ctx, "failed to read link-copied flag",
				zap.String("payment_id", record.ID), zap.Error(err))
		}
		timeLeft := record.TimeLeft(now)
		views = append(views, &entities.PaymentLinkView{
			ID:        record.ID,
			PayLink:   u.PayLink(record.ID),
			Status:    entities.DeriveDisplayStatus(record, now),
			Token:     u.tokens.SymbolFor(record.Token),
			AmountUSD: entities.FormatUSD(record.AmountUSD),
			ExpiresAt: record.ExpiresAt,
			TimeLeft:  timeLeft,
			Countdown: entities.FormatCountdown(timeLeft),
			Copied:    copied,
		})
	}
	return views, nil
}

// MarkLinkCopied records a copy acknowledgement that self-resets after the
// acknowledgement window.
func (u *PaymentRequestUsecase) MarkLinkCopied(ctx context.Context, session Session, paymentID string) error {
	if !session.Connected() {
		return domainerrors.WalletNotConnected()
	}
	if strings.TrimSpace(paymentID) == "" {
		return domainerrors.BadRequest("payment id is required")
	}
	if err := u.mirror.MarkLinkCopied(ctx, paymentID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// PayLink renders the shareable settlement URL for a payment id.
func (u *PaymentRequestUsecase) PayLink(paymentID string) string {
	return u.publicURL + "/pay/" + paymentID
}

func (u *PaymentRequestUsecase) paymentIDs(ctx context.Context, merchant string) ([]string, error) {
	ids, err := u.mirror.GetMerchantPaymentIDs(ctx, merchant)
	if err != nil {
		logger.Warn(ctx, "merchant mirror read failed",
			zap.String("wallet", merchant), zap.Error(err))
	}
	if ids != nil {
		return ids, nil
	}

	ids, err = u.gateway.GetMerchantPayments(ctx, merchant)
	if err != nil {
		return nil, domainerrors.ContractFailure(err)
	}
	if ids == nil {
		ids = []string{}
	}
	if err := u.mirror.PutMerchantPaymentIDs(ctx, merchant, ids); err != nil {
		logger.Warn(ctx, "merchant mirror write failed",
			zap.String("wallet", merchant), zap.Error(err))
	}
	return ids, nil
}
