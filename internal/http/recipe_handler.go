package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/session"
)

func recipeResponse(sess *session.Session, r *model.Recipe) dto.RecipeResponse {
	return dto.RecipeResponse{Recipe: r, Liked: sess.IsLiked(r.ID)}
}

// ShowRecipe handles GET /api/recipes/:id requests.
//
// @Summary      Load a recipe
// @Description  Fetches a recipe, parses its ingredients and makes it the session's current recipe. A load overtaken by a newer one from the same client returns 409.
// @Tags         Recipes
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Recipe id" example(47746)
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse} "Loaded recipe"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      409 {object} dto.ErrorResponse "Superseded by a newer load"
// @Failure      502 {object} dto.ErrorResponse "Recipe API failure"
// @Failure      503 {object} dto.ErrorResponse "Recipe API circuit open"
// @Security     BearerAuth
// @Router       /api/recipes/{id} [get]
func (h *Handler) ShowRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	recipe, err := h.recipes.Show(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(recipeResponse(sess, recipe))
}

// CurrentRecipe handles GET /api/recipe requests.
//
// @Summary      Current recipe
// @Description  Returns the session's current recipe at its current servings.
// @Tags         Recipes
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse} "Current recipe"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "No recipe loaded"
// @Security     BearerAuth
// @Router       /api/recipe [get]
func (h *Handler) CurrentRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	recipe, err := h.recipes.Current(sess)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(recipeResponse(sess, recipe))
}

// UpdateServings handles POST /api/recipe/servings requests.
//
// @Summary      Change servings
// @Description  Steps the current recipe's servings up or down by one, or sets them explicitly. Every ingredient count is rescaled proportionally. Servings never drop below one.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.ServingsRequest true "Direction or explicit servings"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse} "Rescaled recipe"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "No recipe loaded"
// @Security     BearerAuth
// @Router       /api/recipe/servings [post]
func (h *Handler) UpdateServings(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	req, ok := bindAndValidate[dto.ServingsRequest](c, builder)
	if !ok {
		return
	}

	var recipe *model.Recipe
	var err error
	if req.Servings != nil {
		recipe, err = h.recipes.SetServings(sess, *req.Servings)
	} else {
		recipe, err = h.recipes.UpdateServings(sess, model.ServingsDirection(req.Direction))
	}
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(recipeResponse(sess, recipe))
}
