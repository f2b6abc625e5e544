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

// PaymentRequestHandler handles merchant-side payment link endpoints
type PaymentRequestHandler struct {
	requestUsecase *usecases.PaymentRequestUsecase
}

// NewPaymentRequestHandler creates a new payment request handler
func NewPaymentRequestHandler(requestUsecase *usecases.PaymentRequestUsecase) *PaymentRequestHandler {
	return &PaymentRequestHandler{requestUsecase: requestUsecase}
}

// Create submits a new payment request
// POST /api/v1/requests
func (h *PaymentRequestHandler) Create(c *gin.Context) {
	session := middleware.GetSession(c)
	if !session.Connected() {
		response.Error(c, domainerrors.WalletNotConnected())
		return
	}

	var input entities.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.requestUsecase.Create(c.Request.Context(), session, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if resp.RegistrationRequired {
		// Not an error: the caller is redirected to onboarding.
		response.Success(c, http.StatusOK, resp)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// List returns the session wallet's payment links, actionable items first
// GET /api/v1/requests
func (h *PaymentRequestHandler) List(c *gin.Context) {
	session := middleware.GetSession(c)

	views, err := h.requestUsecase.List(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": views})
}

// MarkCopied records a share-link copy acknowledgement
// POST /api/v1/requests/:id/copied
func (h *PaymentRequestHandler) MarkCopied(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := h.requestUsecase.MarkLinkCopied(c.Request.Context(), session, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"copied": true})
}
