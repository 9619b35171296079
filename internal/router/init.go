package router

import (
	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/container"
	handlers "github.com/suugaanle/qaamuus/internal/interface/http"
	"github.com/suugaanle/qaamuus/internal/router/modules"
)

type Services struct {
	Dictionary    *application.DictionaryService
	Verification  *application.VerificationService
	Accounts      *application.AuthService
	Contributions *application.ContributionService
}

// BuildServices constructs the application services from container
// singletons. Exposed so cmd binaries can run startup tasks (seeding,
// bootstrap accounts) against the same instances the router uses.
func BuildServices() Services {
	cfg := container.GetConfig()

	dict := application.NewDictionaryService(
		container.GetDocStore(),
		container.GetLogger(),
		container.GetES(),
		cfg.ESEntriesIndex,
		container.GetGCS(),
		cfg.GCSBucket,
	)

	verif := application.NewVerificationService(
		container.GetDocStore(),
		container.GetLogger(),
		container.GetMailer(),
		cfg.CodeTTL,
		cfg.MaxCodeAttempts,
	)

	accounts := application.NewAuthService(
		container.GetDocStore(),
		container.GetLogger(),
		verif,
	)

	contrib := application.NewContributionService(
		container.GetDocStore(),
		container.GetLogger(),
	)

	return Services{
		Dictionary:    dict,
		Verification:  verif,
		Accounts:      accounts,
		Contributions: contrib,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, svcs Services) {
	cfg := container.GetConfig()
	jwt := container.GetJWT()
	logger := container.GetLogger()

	dictHandler := handlers.NewDictionaryHandler(svcs.Dictionary, logger)
	authHandler := handlers.NewAuthHandler(svcs.Accounts, svcs.Verification, jwt, logger, cfg.CookieDomain, cfg.CookieSecure)
	contribHandler := handlers.NewContributionHandler(svcs.Contributions, logger)

	r.Add(modules.NewDictionaryModule(dictHandler, svcs.Accounts, jwt))
	r.Add(modules.NewAuthModule(authHandler, svcs.Accounts, jwt))
	r.Add(modules.NewContributionModule(contribHandler, svcs.Accounts, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
