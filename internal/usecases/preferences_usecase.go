package usecases

import (
	"context"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/domain/repositories"
)

// PreferencesUsecase handles session-scoped dashboard settings.
type PreferencesUsecase struct {
	repo repositories.PreferencesRepository
}

// NewPreferencesUsecase creates a new preferences usecase
func NewPreferencesUsecase(repo repositories.PreferencesRepository) *PreferencesUsecase {
	return &PreferencesUsecase{repo: repo}
}

// Get returns the session wallet's preferences, defaults when none stored.
func (u *PreferencesUsecase) Get(ctx context.Context, session Session) (*entities.Preferences, error) {
	if !session.Connected() {
		return nil, domainerrors.WalletNotConnected()
	}
	prefs, err := u.repo.Get(ctx, session.Address)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return prefs, nil
}

// Update validates and stores the session wallet's preferences.
func (u *PreferencesUsecase) Update(ctx context.Context, session Session, prefs *entities.Preferences) (*entities.Preferences, error) {
	if !session.Connected() {
		return nil, domainerrors.WalletNotConnected()
	}
	if prefs == nil {
		return nil, domainerrors.BadRequest("preferences payload is required")
	}
	if err := prefs.Validate(); err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}
	if err := u.repo.Put(ctx, session.Address, prefs); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return prefs, nil
}
