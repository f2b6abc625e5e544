package usecases

import (
	"context"

	"go.uber.org/zap"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/domain/repositories"
	"walletwave.backend/pkg/logger"
)

// recordReader reads payment records through the mirror. A mirror miss goes
// to the chain and refreshes the mirror; mirror write failures degrade to
// chain reads instead of failing the request.
type recordReader struct {
	gateway repositories.PaymentGateway
	mirror  repositories.PaymentMirror
}

func (r recordReader) read(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	record, err := r.mirror.GetRecord(ctx, paymentID)
	if err != nil {
		logger.Warn(ctx, "payment mirror read failed",
			zap.String("payment_id", paymentID), zap.Error(err))
	}
	if record != nil {
		return record, nil
	}
	return r.readFresh(ctx, paymentID)
}

// readFresh always goes to the chain, then refreshes the mirror.
func (r recordReader) readFresh(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	record, err := r.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, domainerrors.ContractFailure(err)
	}
	if !record.IsZero() {
		if err := r.mirror.PutRecord(ctx, record); err != nil {
			logger.Warn(ctx, "payment mirror write failed",
				zap.String("payment_id", paymentID), zap.Error(err))
		}
	}
	return record, nil
}
