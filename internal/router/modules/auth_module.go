package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/container"
	handlers "github.com/suugaanle/qaamuus/internal/interface/http"
	"github.com/suugaanle/qaamuus/internal/interface/middleware"
	"github.com/suugaanle/qaamuus/pkg/helpers"
)

type AuthModule struct {
	Handler  *handlers.AuthHandler
	Accounts *application.AuthService
	JWT      *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, accounts *application.AuthService, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Accounts: accounts, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	verifySendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyConfirmLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)
	rg.POST("/auth/verify/send", verifySendLimiter, m.Handler.VerifySend)
	rg.POST("/auth/verify/confirm", verifyConfirmLimiter, m.Handler.VerifyConfirm)

	// Session required
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Accounts, m.JWT))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/auth/me", m.Handler.Me)
	}

	// Admin only
	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.Accounts, m.JWT), middleware.AdminOnly())
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.POST("/users/:id/promote", m.Handler.Promote)
	}
}
