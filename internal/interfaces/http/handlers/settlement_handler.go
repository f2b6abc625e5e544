package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"walletwave.backend/internal/interfaces/http/middleware"
	"walletwave.backend/internal/interfaces/http/response"
	"walletwave.backend/internal/usecases"
)

// SettlementHandler handles the customer-facing payment page endpoints
type SettlementHandler struct {
	settlementUsecase *usecases.SettlementUsecase
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementUsecase *usecases.SettlementUsecase) *SettlementHandler {
	return &SettlementHandler{settlementUsecase: settlementUsecase}
}

// View resolves a payment link to its current display state. The id comes
// from the path, or from the query string on the manual-lookup route.
// GET /api/v1/pay/:id
// GET /api/v1/pay?id=
func (h *SettlementHandler) View(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}

	view, err := h.settlementUsecase.View(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Settle submits the settlement for a pending link
// POST /api/v1/pay/:id
func (h *SettlementHandler) Settle(c *gin.Context) {
	session := middleware.GetSession(c)

	resp, err := h.settlementUsecase.Settle(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
