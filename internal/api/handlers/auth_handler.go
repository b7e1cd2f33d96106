package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/services"
	"ridehail/pkg/apierror"
)

type AuthHandler struct {
	auth *services.AuthService
	errs *apierror.Handler
}

func NewAuthHandler(auth *services.AuthService, errs *apierror.Handler) *AuthHandler {
	return &AuthHandler{auth: auth, errs: errs}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, h.errs, http.StatusBadRequest, err, "auth.login", "Email and password are required")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failWith(c, h.errs, http.StatusInternalServerError, err, "auth.login", "Could not log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}
