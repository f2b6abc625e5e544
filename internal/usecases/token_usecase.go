package usecases

import (
	"context"

	"go.uber.org/zap"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/domain/repositories"
	"walletwave.backend/pkg/logger"
)

// TokenUsecase exposes the accepted tokens with display-only USD prices.
type TokenUsecase struct {
	oracle repositories.PriceOracle
	tokens *entities.TokenRegistry
}

// NewTokenUsecase creates a new token usecase
func NewTokenUsecase(oracle repositories.PriceOracle, tokens *entities.TokenRegistry) *TokenUsecase {
	return &TokenUsecase{
		oracle: oracle,
		tokens: tokens,
	}
}

// List returns the accepted tokens. Prices are best-effort: an oracle
// failure leaves the price empty rather than failing the listing.
func (u *TokenUsecase) List(ctx context.Context) []*entities.TokenPrice {
	all := u.tokens.All()
	out := make([]*entities.TokenPrice, 0, len(all))
	for _, token := range all {
		entry := &entities.TokenPrice{
			Symbol:  token.Symbol,
			Address: token.Address,
			Native:  token.Native,
		}
		price, err := u.oracle.GetPrice(ctx, token.Address)
		if err != nil {
			logger.Warn(ctx, "price read failed",
				zap.String("token", token.Symbol), zap.Error(err))
		} else {
			entry.PriceUSD = entities.FormatUSD(price.String())
		}
		out = append(out, entry)
	}
	return out
}

// Price returns the oracle USD price for a single token, looked up by
// symbol or address. Unlike List, an oracle failure here is an error.
func (u *TokenUsecase) Price(ctx context.Context, symbolOrAddress string) (*entities.TokenPrice, error) {
	token, ok := u.tokens.Find(symbolOrAddress)
	if !ok {
		return nil, domainerrors.BadRequest("unsupported token")
	}

	price, err := u.oracle.GetPrice(ctx, token.Address)
	if err != nil {
		return nil, domainerrors.ContractFailure(err)
	}

	return &entities.TokenPrice{
		Symbol:   token.Symbol,
		Address:  token.Address,
		Native:   token.Native,
		PriceUSD: entities.FormatUSD(price.String()),
	}, nil
}
