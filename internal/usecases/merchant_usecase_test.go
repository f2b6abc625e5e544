package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/usecases"
)

const walletAddr = "0x3FA38C1B92dE06c744784B18DEf8C3088E1C96f1"

func TestMerchantStatus_RequiresConnectedWallet(t *testing.T) {
	uc := usecases.NewMerchantUsecase(new(MockMerchantRegistry), new(MockPaymentMirror))

	_, err := uc.Status(context.Background(), usecases.Session{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWalletNotConnected)
}

func TestMerchantStatus_ServedFromMirror(t *testing.T) {
	registry := new(MockMerchantRegistry)
	mirror := new(MockPaymentMirror)
	mirror.On("GetMerchantActive", mock.Anything, walletAddr).Return(true, true, nil)

	uc := usecases.NewMerchantUsecase(registry, mirror)
	resp, err := uc.Status(context.Background(), usecases.Session{Address: walletAddr})
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, walletAddr, resp.Address)
	registry.AssertNotCalled(t, "IsMerchantActive", mock.Anything, mock.Anything)
}

func TestMerchantStatus_MirrorMissReadsRegistry(t *testing.T) {
	registry := new(MockMerchantRegistry)
	mirror := new(MockPaymentMirror)
	mirror.On("GetMerchantActive", mock.Anything, walletAddr).Return(false, false, nil)
	registry.On("IsMerchantActive", mock.Anything, walletAddr).Return(true, nil)
	mirror.On("PutMerchantActive", mock.Anything, walletAddr, true).Return(nil)

	uc := usecases.NewMerchantUsecase(registry, mirror)
	resp, err := uc.Status(context.Background(), usecases.Session{Address: walletAddr})
	require.NoError(t, err)
	assert.True(t, resp.Active)
	mirror.AssertExpectations(t)
}

func TestMerchantStatus_RegistryFailureIsContractError(t *testing.T) {
	registry := new(MockMerchantRegistry)
	mirror := new(MockPaymentMirror)
	mirror.On("GetMerchantActive", mock.Anything, walletAddr).Return(false, false, nil)
	registry.On("IsMerchantActive", mock.Anything, walletAddr).Return(false, errors.New("rpc down"))

	uc := usecases.NewMerchantUsecase(registry, mirror)
	_, err := uc.Status(context.Background(), usecases.Session{Address: walletAddr})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrContractCall)
}

func TestRegisterMerchant_RequiresConnectedWallet(t *testing.T) {
	uc := usecases.NewMerchantUsecase(new(MockMerchantRegistry), new(MockPaymentMirror))

	_, err := uc.Register(context.Background(), usecases.Session{}, &entities.RegisterMerchantInput{
		BusinessName: "Acme", Email: "a@b.c",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWalletNotConnected)
}

func TestRegisterMerchant_ValidatesInput(t *testing.T) {
	uc := usecases.NewMerchantUsecase(new(MockMerchantRegistry), new(MockPaymentMirror))
	session := usecases.Session{Address: walletAddr}

	_, err := uc.Register(context.Background(), session, &entities.RegisterMerchantInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = uc.Register(context.Background(), session, &entities.RegisterMerchantInput{
		BusinessName: "Acme", Email: "not-an-email",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestRegisterMerchant_ConfirmsAndInvalidatesFlag(t *testing.T) {
	registry := new(MockMerchantRegistry)
	mirror := new(MockPaymentMirror)
	registry.On("RegisterMerchant", mock.Anything, "Acme Coffee", "owner@acme.test").Return("0xhash", nil)
	registry.On("WaitConfirmed", mock.Anything, "0xhash").Return(nil)
	mirror.On("InvalidateMerchantActive", mock.Anything, walletAddr).Return(nil)

	uc := usecases.NewMerchantUsecase(registry, mirror)
	txHash, err := uc.Register(context.Background(), usecases.Session{Address: walletAddr}, &entities.RegisterMerchantInput{
		BusinessName: "Acme Coffee",
		Email:        "owner@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xhash", txHash)
	registry.AssertExpectations(t)
	mirror.AssertExpectations(t)
}

func TestRegisterMerchant_RejectedWritePreservesNoState(t *testing.T) {
	registry := new(MockMerchantRegistry)
	mirror := new(MockPaymentMirror)
	registry.On("RegisterMerchant", mock.Anything, "Acme", "a@b.c").Return("", errors.New("user rejected"))

	uc := usecases.NewMerchantUsecase(registry, mirror)
	_, err := uc.Register(context.Background(), usecases.Session{Address: walletAddr}, &entities.RegisterMerchantInput{
		BusinessName: "Acme", Email: "a@b.c",
	})
	assert.ErrorIs(t, err, domainerrors.ErrContractCall)
	mirror.AssertNotCalled(t, "InvalidateMerchantActive", mock.Anything, mock.Anything)
}
