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

// ContributionModule wires the suggestion inbox. Submitting needs a
// session, moderation needs an admin.

type ContributionModule struct {
	Handler  *handlers.ContributionHandler
	Accounts *application.AuthService
	JWT      *helpers.JWTManager
}

func NewContributionModule(h *handlers.ContributionHandler, accounts *application.AuthService, jwt *helpers.JWTManager) *ContributionModule {
	return &ContributionModule{Handler: h, Accounts: accounts, JWT: jwt}
}

func (m *ContributionModule) Register(rg *gin.RouterGroup) {
	submitLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Accounts, m.JWT))
	{
		auth.POST("/contributions", submitLimiter, m.Handler.Submit)
	}

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.Accounts, m.JWT), middleware.AdminOnly())
	{
		admin.GET("/contributions", m.Handler.List)
		admin.GET("/contributions/status/:status", m.Handler.ListByStatus)
		admin.GET("/contributions/stats", m.Handler.Stats)
		admin.PATCH("/contributions/:id/status", m.Handler.UpdateStatus)
		admin.DELETE("/contributions/:id", m.Handler.Delete)
	}
}
