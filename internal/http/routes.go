package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/middleware"
)

// PublicRouteGroup defines routes that don't require a session.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require a session token.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ PublicRouteGroup    = (*RecipeRoutes)(nil)
	_ ProtectedRouteGroup = (*RecipeRoutes)(nil)
)

// RecipeRoutes handles recipe API route registration.
type RecipeRoutes struct {
	handler *Handler
}

// NewRecipeRoutes creates a new RecipeRoutes instance.
func NewRecipeRoutes(handler *Handler) *RecipeRoutes {
	return &RecipeRoutes{handler: handler}
}

// RegisterPublicRoutes registers session creation and the stateless
// ingredient utilities.
func (r *RecipeRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", r.handler.CreateSession)

	ingredients := rg.Group("/ingredients")
	{
		ingredients.POST("/parse", r.handler.ParseIngredients)
		ingredients.POST("/scale", r.handler.ScaleIngredients)
	}
}

// RegisterProtectedRoutes registers the session-scoped routes behind SessionAuth.
func (r *RecipeRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	protected := r.GetProtectedGroup(rg, cfg)

	protected.GET("/sessions/current", r.handler.CurrentSession)

	protected.GET("/search", r.handler.Search)
	protected.GET("/search/pages/:page", r.handler.SearchPage)

	protected.GET("/recipes/:id", r.handler.ShowRecipe)
	protected.GET("/recipe", r.handler.CurrentRecipe)
	protected.POST("/recipe/servings", r.handler.UpdateServings)

	protected.GET("/list", r.handler.ListItems)
	protected.POST("/list", r.handler.AddListItem)
	protected.POST("/list/recipe", r.handler.AddRecipeToList)
	protected.PATCH("/list/:id", r.handler.UpdateListItem)
	protected.DELETE("/list/:id", r.handler.DeleteListItem)

	protected.GET("/likes", r.handler.ListLikes)
	protected.POST("/likes/toggle", r.handler.ToggleLike)
	protected.DELETE("/likes/:id", r.handler.DeleteLike)
}

// GetProtectedGroup returns a router group with session auth and per-client
// rate limiting applied.
func (r *RecipeRoutes) GetProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.SessionAuth(cfg.Tokens, cfg.Sessions))

	if cfg.ClientLimiter == nil && cfg.RateLimit > 0 {
		cfg.ClientLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.ClientLimiter != nil {
		protected.Use(cfg.ClientLimiter.ClientRateLimit())
	}

	return protected
}
