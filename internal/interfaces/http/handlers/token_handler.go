package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletwave.backend/internal/interfaces/http/response"
	"walletwave.backend/internal/usecases"
)

// TokenHandler handles token listing endpoints
type TokenHandler struct {
	tokenUsecase *usecases.TokenUsecase
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenUsecase *usecases.TokenUsecase) *TokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

// List returns the accepted tokens with display-only USD prices
// GET /api/v1/tokens
func (h *TokenHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tokens": h.tokenUsecase.List(c.Request.Context())})
}

// GetPrice returns the oracle USD price for one token
// GET /api/v1/tokens/:symbol/price
func (h *TokenHandler) GetPrice(c *gin.Context) {
	price, err := h.tokenUsecase.Price(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, price)
}
