package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/logger"
	"github.com/guttosm/recipe-service/internal/middleware"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/guttosm/recipe-service/internal/session"
)

// Services groups the business services used by the API handlers.
type Services struct {
	Tokens  service.TokenService
	Recipes service.RecipeService
	Search  service.SearchService
	List    service.ShoppingListService
	Likes   service.LikesService
	Parser  service.IngredientParser
}

// Handler provides HTTP handlers for the recipe API.
type Handler struct {
	tokens  service.TokenService
	recipes service.RecipeService
	search  service.SearchService
	list    service.ShoppingListService
	likes   service.LikesService
	parser  service.IngredientParser
}

// NewHandler creates a new Handler instance.
func NewHandler(svc Services) *Handler {
	parser := svc.Parser
	if parser == nil {
		parser = service.NewIngredientParser()
	}
	return &Handler{
		tokens:  svc.Tokens,
		recipes: svc.Recipes,
		search:  svc.Search,
		list:    svc.List,
		likes:   svc.Likes,
		parser:  parser,
	}
}

// currentSession returns the session opened by SessionAuth. It writes a 401
// and returns false when the route was registered without it.
func currentSession(c *gin.Context, builder *ResponseBuilder) (*session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return nil, false
	}
	return sess, true
}

// CreateSession handles POST /api/sessions requests.
//
// @Summary      Start a session
// @Description  Issues a new client id and a bearer token bound to it. The token identifies the client's search results, current recipe, shopping list and likes.
// @Tags         Sessions
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session created"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	clientID, token, expiresAt, err := h.tokens.NewClient()
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	log := logger.ForClient(clientID)
	log.Info().
		Str("request_id", middleware.GetRequestID(c)).
		Msg("session issued")

	builder.SuccessCreated(dto.SessionResponse{
		ClientID:  clientID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// CurrentSession handles GET /api/sessions/current requests.
//
// @Summary      Describe the session
// @Description  Returns a summary of the state held for the calling client.
// @Tags         Sessions
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionSummaryResponse} "Session summary"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/sessions/current [get]
func (h *Handler) CurrentSession(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	snap := sess.Snapshot()
	builder.SuccessOK(dto.SessionSummaryResponse{
		ClientID:   snap.ClientID,
		CreatedAt:  snap.CreatedAt,
		Query:      snap.Query,
		Results:    snap.Results,
		RecipeID:   snap.RecipeID,
		ListItems:  snap.ListItems,
		LikesCount: snap.LikesCount,
	})
}
