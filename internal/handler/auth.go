package handler

import (
	"net/http"
	"time"

	"github.com/0929smj/chun2/internal/logger"
	"github.com/0929smj/chun2/internal/middleware"
	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	logger.Info("login.ok", "name", a.Name)

	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": a.Name,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}).SignedString(middleware.JWTSecret)

	c.JSON(http.StatusOK, model.LoginResponse{Token: token, Name: a.Name})
}
