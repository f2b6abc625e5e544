package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletwave.backend/internal/domain/entities"
	domainerrors "walletwave.backend/internal/domain/errors"
	"walletwave.backend/internal/interfaces/http/middleware"
	"walletwave.backend/internal/interfaces/http/response"
	"walletwave.backend/internal/usecases"
)

// MerchantHandler handles merchant endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// GetStatus reports whether the session wallet is an active merchant
// GET /api/v1/merchants/status
func (h *MerchantHandler) GetStatus(c *gin.Context) {
	session := middleware.GetSession(c)

	resp, err := h.merchantUsecase.Status(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Register handles merchant onboarding
// POST /api/v1/merchants/register
func (h *MerchantHandler) Register(c *gin.Context) {
	session := middleware.GetSession(c)
	if !session.Connected() {
		response.Error(c, domainerrors.WalletNotConnected())
		return
	}

	var input entities.RegisterMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	txHash, err := h.merchantUsecase.Register(c.Request.Context(), session, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"txHash": txHash})
}
