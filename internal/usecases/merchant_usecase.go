package usecases

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/domain/repositories"
	"walletwave.backend/pkg/logger"
)

// MerchantUsecase handles merchant onboarding and gating
type MerchantUsecase struct {
	registry repositories.MerchantRegistry
	mirror   repositories.PaymentMirror
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(registry repositories.MerchantRegistry, mirror repositories.PaymentMirror) *MerchantUsecase {
	return &MerchantUsecase{
		registry: registry,
		mirror:   mirror,
	}
}

// Status reports whether the session wallet is an active merchant.
func (u *MerchantUsecase) Status(ctx context.Context, session Session) (*entities.MerchantStatusResponse, error) {
	if !session.Connected() {
		return nil, domainerrors.WalletNotConnected()
	}

	active, err := u.IsActive(ctx, session.Address)
	if err != nil {
		return nil, err
	}
	return &entities.MerchantStatusResponse{
		Address: session.Address,
		Active:  active,
	}, nil
}

// IsActive reads the registry's active flag through the mirror.
func (u *MerchantUsecase) IsActive(ctx context.Context, wallet string) (bool, error) {
	active, present, err := u.mirror.GetMerchantActive(ctx, wallet)
	if err != nil {
		return false, domainerrors.InternalError(err)
	}
	if present {
		return active, nil
	}

	active, err = u.registry.IsMerchantActive(ctx, wallet)
	if err != nil {
		return false, domainerrors.ContractFailure(err)
	}
	if err := u.mirror.PutMerchantActive(ctx, wallet, active); err != nil {
		logger.Warn(ctx, "failed to mirror merchant active flag",
			zap.String("wallet", wallet), zap.Error(err))
	}
	return active, nil
}

// Register submits a merchant onboarding write, waits for its confirmation
// and drops the mirrored active flag so the next status read sees the
// registry's new state.
func (u *MerchantUsecase) Register(ctx context.Context, session Session, input *entities.RegisterMerchantInput) (string, error) {
	if !session.Connected() {
		return "", domainerrors.WalletNotConnected()
	}
	if input == nil || strings.TrimSpace(input.BusinessName) == "" {
		return "", domainerrors.BadRequest("business name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return "", domainerrors.BadRequest("a valid business email is required")
	}

	txHash, err := u.registry.RegisterMerchant(ctx, input.BusinessName, input.Email)
	if err != nil {
		return "", domainerrors.ContractFailure(err)
	}
	if err := u.registry.WaitConfirmed(ctx, txHash); err != nil {
		return "", domainerrors.ContractFailure(err)
	}

	if err := u.mirror.InvalidateMerchantActive(ctx, session.Address); err != nil {
		logger.Warn(ctx, "failed to invalidate merchant active flag",
			zap.String("wallet", session.Address), zap.Error(err))
	}

	logger.Info(ctx, "merchant registered",
		zap.String("wallet", session.Address), zap.String("tx_hash", txHash))
	return txHash, nil
}
