// Package app provides router configuration.
package app

import (
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/http"
	"github.com/guttosm/recipe-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	stores *StoreComponents,
	sessions *SessionComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(http.Services{
		Tokens:  services.Tokens,
		Recipes: services.Recipes,
		Search:  services.Search,
		List:    services.List,
		Likes:   services.Likes,
		Parser:  services.Parser,
	})

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("likes_store", http.HealthCheckerFunc(stores.KV.Ping))
	if stores.CircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("likes_store", stores.CircuitBreaker)
	}
	if services.SourceCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("recipe_api", services.SourceCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Tokens:         services.Tokens,
		Sessions:       sessions.Manager,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.IPLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		routerCfg.ClientLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Stop releases the rate limiter workers.
func (r *RouterComponents) Stop() {
	if r.Config.IPLimiter != nil {
		r.Config.IPLimiter.Stop()
	}
	if r.Config.ClientLimiter != nil {
		r.Config.ClientLimiter.Stop()
	}
}
