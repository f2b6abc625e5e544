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

// SettingsHandler handles session preference endpoints
type SettingsHandler struct {
	preferencesUsecase *usecases.PreferencesUsecase
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(preferencesUsecase *usecases.PreferencesUsecase) *SettingsHandler {
	return &SettingsHandler{preferencesUsecase: preferencesUsecase}
}

// Get returns the session wallet's preferences
// GET /api/v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	session := middleware.GetSession(c)

	prefs, err := h.preferencesUsecase.Get(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, prefs)
}

// Update stores the session wallet's preferences
// PUT /api/v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	session := middleware.GetSession(c)
	if !session.Connected() {
		response.Error(c, domainerrors.WalletNotConnected())
		return
	}

	var prefs entities.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	updated, err := h.preferencesUsecase.Update(c.Request.Context(), session, &prefs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}
