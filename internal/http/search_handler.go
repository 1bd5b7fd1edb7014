package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/i18n"
)

// parsePage reads a 1-based page number. An empty value means page 1.
func parsePage(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// Search handles GET /api/search requests.
//
// @Summary      Search recipes
// @Description  Searches the recipe API for the keywords in q, stores the results in the session and returns the requested page. A search overtaken by a newer one from the same client returns 409.
// @Tags         Search
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        q query string true "Search keywords" example(pizza)
// @Param        page query int false "Page number (1-based)" minimum(1) default(1)
// @Success      200 {object} dto.SuccessResponse{data=model.ResultsPage} "Page of results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - empty query or invalid page"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      409 {object} dto.ErrorResponse "Superseded by a newer search"
// @Failure      502 {object} dto.ErrorResponse "Recipe API failure"
// @Failure      503 {object} dto.ErrorResponse "Recipe API circuit open"
// @Security     BearerAuth
// @Router       /api/search [get]
func (h *Handler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	page, ok := parsePage(c.Query("page"))
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPage, nil)
		return
	}

	results, err := h.search.Search(c.Request.Context(), sess, c.Query("q"), page)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(results)
}

// SearchPage handles GET /api/search/pages/:page requests.
//
// @Summary      Page through results
// @Description  Returns a page of the session's last search results. Out of range pages are clamped.
// @Tags         Search
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        page path int true "Page number (1-based)" minimum(1)
// @Success      200 {object} dto.SuccessResponse{data=model.ResultsPage} "Page of results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid page"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/search/pages/{page} [get]
func (h *Handler) SearchPage(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	page, ok := parsePage(c.Param("page"))
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPage, nil)
		return
	}

	builder.SuccessOK(h.search.Page(sess, page))
}
