package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/pkg/helpers"
	"github.com/suugaanle/qaamuus/pkg/response"
	"github.com/suugaanle/qaamuus/pkg/validation"
)

// User-facing messages stay in Somali, matching the rest of the app.
const (
	msgRegisterOK     = "Diiwaangelinta waa guuleysatay"
	msgUserExists     = "Magaca isticmaalaha ama email-ka ayaa horay loo isticmaalay"
	msgMustVerify     = "Fadlan marka hore xaqiiji email-kaaga"
	msgLoginOK        = "Galitaanka waa guuleysatay"
	msgLoginFailed    = "Email-ka ama lambarka sirta ah waa khalad"
	msgCodeSent       = "Lambarka xaqiijinta ayaa loo diray %s. Fadlan eeg email-kaaga."
	msgCodeSendFailed = "Khalad ayaa dhacay dirista lambarka xaqiijinta"
	msgCodeNotFound   = "Lambar xaqiijin lama helin. Fadlan dib u codso."
	msgCodeExpired    = "Lambarka xaqiijinta wuu dhacay. Fadlan mid cusub codso."
	msgCodeAttempts   = "Tijaabooyin badan ayaad samaysay. Fadlan mid cusub codso."
	msgCodeMismatch   = "Lambarka xaqiijinta waa khalad. %d jeer ayaad ku hadhay."
	msgEmailVerified  = "Email-ka si guul leh ayaa loo xaqiijiyay!"
	msgRegisterFailed = "Khalad ayaa dhacay diiwaangelinta"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Verif   *application.VerificationService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.AuthService, verif *application.VerificationService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Verif: verif, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"` // username or email
	Password string `json:"password" binding:"required"`
}

type verifySendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), entity.NewUser{Username: req.Username, Email: req.Email, Password: req.Password})
	switch {
	case errors.Is(err, application.ErrEmailNotVerified):
		response.Error[any](c, http.StatusForbidden, msgMustVerify, nil)
	case errors.Is(err, application.ErrUserExists):
		response.Error[any](c, http.StatusConflict, msgUserExists, nil)
	case err != nil:
		response.Error[any](c, http.StatusInternalServerError, msgRegisterFailed, nil)
	default:
		h.issueSession(c, u)
		response.Success(c, http.StatusCreated, u, msgRegisterOK, nil)
	}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// One generic message for unknown users and wrong secrets alike.
		response.Error[any](c, http.StatusUnauthorized, msgLoginFailed, nil)
		return
	}
	h.issueSession(c, u)
	response.Success(c, http.StatusOK, u, msgLoginOK, nil)
}

func (h *AuthHandler) issueSession(c *gin.Context, u entity.User) {
	access, aexp, err := h.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return
	}
	h.Cookies.SetPair(c, access, aexp, refresh, rexp)
}

// Refresh POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	claims, err := h.JWT.ParseRefreshToken(refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	u, err := h.Svc.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.issueSession(c, *u)
	response.Success[any](c, http.StatusOK, map[string]any{"refreshed": true}, "token refreshed", nil)
}

// Logout POST /api/auth/logout (auth)
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context())
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Me GET /api/auth/me (auth)
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

// ListUsers GET /api/users (admin)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users := h.Svc.AllUsers(c.Request.Context())
	response.Success(c, http.StatusOK, users, "users", map[string]any{"count": len(users)})
}

// Promote POST /api/users/:id/promote (admin)
func (h *AuthHandler) Promote(c *gin.Context) {
	if ok := h.Svc.PromoteToAdmin(c.Request.Context(), c.Param("id")); !ok {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"promoted": true}, "user promoted", nil)
}

// VerifySend POST /api/auth/verify/send
func (h *AuthHandler) VerifySend(c *gin.Context) {
	var req verifySendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	expiresAt, err := h.Verif.SendCode(c.Request.Context(), req.Email)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, msgCodeSendFailed, nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"expires_at": expiresAt}, fmt.Sprintf(msgCodeSent, req.Email), nil)
}

// VerifyConfirm POST /api/auth/verify/confirm
func (h *AuthHandler) VerifyConfirm(c *gin.Context) {
	var req verifyConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	remaining, err := h.Verif.VerifyCode(c.Request.Context(), req.Email, req.Code)
	switch {
	case errors.Is(err, application.ErrCodeNotFound):
		response.Error[any](c, http.StatusNotFound, msgCodeNotFound, nil)
	case errors.Is(err, application.ErrCodeExpired):
		response.Error[any](c, http.StatusGone, msgCodeExpired, nil)
	case errors.Is(err, application.ErrTooManyAttempts):
		response.Error[any](c, http.StatusTooManyRequests, msgCodeAttempts, nil)
	case errors.Is(err, application.ErrCodeMismatch):
		response.Error[any](c, http.StatusBadRequest, fmt.Sprintf(msgCodeMismatch, remaining), map[string]any{"remaining_attempts": remaining})
	case err != nil:
		response.Error[any](c, http.StatusInternalServerError, msgCodeSendFailed, nil)
	default:
		response.Success[any](c, http.StatusOK, map[string]any{"verified": true}, msgEmailVerified, nil)
	}
}
