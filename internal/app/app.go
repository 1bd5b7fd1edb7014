// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the fully wired application.
type App struct {
	Router   *gin.Engine
	Store    *StoreComponents
	Services *ServiceComponents
	Sessions *SessionComponents
	closers  []func(context.Context) error
}

// InitializeApp creates and wires all application dependencies.
// Callers must Close the returned App to stop background workers and
// release the likes store.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	storeComponents, err := InitializeStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	serviceComponents := InitializeServices(cfg, storeComponents.KV)
	sessionComponents := InitializeSessions(cfg.Session, serviceComponents.Likes)
	routerComponents := InitializeRouter(serviceComponents, storeComponents, sessionComponents, cfg)

	app := &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Store:    storeComponents,
		Services: serviceComponents,
		Sessions: sessionComponents,
	}
	app.closers = append(app.closers,
		func(context.Context) error { routerComponents.Stop(); return nil },
		func(context.Context) error { sessionComponents.Store.Stop(); return nil },
		storeComponents.KV.Close,
	)

	log.Info().
		Str("store", storeComponents.Backend).
		Str("recipe_api", cfg.Upstream.BaseURL).
		Msg("Application initialized")

	return app, nil
}

// Close releases every resource held by the application.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
