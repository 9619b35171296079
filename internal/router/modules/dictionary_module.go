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

// DictionaryModule wires the entry endpoints.
// Public: GET /api/entries, /entries/search, /entries/suggest, /entries/random,
// /entries/category/:category, /entries/export
// Admin only: create, delete, import, reset, backup, indexed search

type DictionaryModule struct {
	Handler  *handlers.DictionaryHandler
	Accounts *application.AuthService
	JWT      *helpers.JWTManager
}

func NewDictionaryModule(h *handlers.DictionaryHandler, accounts *application.AuthService, jwt *helpers.JWTManager) *DictionaryModule {
	return &DictionaryModule{Handler: h, Accounts: accounts, JWT: jwt}
}

func (m *DictionaryModule) Register(rg *gin.RouterGroup) {
	// Browsing is public, searches get a per-IP limit
	searchLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/entries", m.Handler.List)
	rg.GET("/entries/search", searchLimiter, m.Handler.Search)
	rg.GET("/entries/suggest", searchLimiter, m.Handler.Suggest)
	rg.GET("/entries/random", m.Handler.Random)
	rg.GET("/entries/category/:category", m.Handler.ByCategory)
	rg.GET("/entries/export", m.Handler.Export)

	// Mutations require an admin session
	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.Accounts, m.JWT), middleware.AdminOnly())
	{
		admin.POST("/entries", m.Handler.Create)
		admin.DELETE("/entries/:id", m.Handler.Delete)
		admin.POST("/entries/import", m.Handler.Import)
		admin.POST("/entries/reset", m.Handler.Reset)
		admin.POST("/entries/backup", m.Handler.Backup)
		admin.GET("/entries/search/indexed", searchLimiter, m.Handler.SearchIndexed)
	}
}
