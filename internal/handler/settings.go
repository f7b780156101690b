package handler

import (
	"net/http"

	"github.com/0929smj/chun2/internal/logger"
	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *service.SettingsService
	sync     *service.SyncService
}

func NewSettingsHandler(settings *service.SettingsService, sync *service.SyncService) *SettingsHandler {
	return &SettingsHandler{settings: settings, sync: sync}
}

// GET /api/settings/endpoint
func (h *SettingsHandler) GetEndpoint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.settings.EndpointURL()})
}

// PUT /api/settings/endpoint  body: {"url":"https://script.google.com/..."}
func (h *SettingsHandler) SetEndpoint(c *gin.Context) {
	var req model.EndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.settings.SetEndpointURL(c.Request.Context(), req.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("settings.endpoint_updated")
	c.JSON(http.StatusOK, gin.H{"url": req.URL})
}

// POST /api/settings/test
//
// Blocking on purpose: this is the user-initiated connection check, the one
// place a remote failure is surfaced verbatim instead of falling back.
func (h *SettingsHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.TestConnection(c.Request.Context()))
}
