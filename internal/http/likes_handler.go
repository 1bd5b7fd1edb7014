package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
)

// ListLikes handles GET /api/likes requests.
//
// @Summary      Liked recipes
// @Description  Returns the client's liked recipes. Likes survive restarts and new sessions of the same client.
// @Tags         Likes
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.LikesResponse} "Liked recipes"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/likes [get]
func (h *Handler) ListLikes(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	likes := sess.Likes()
	builder.SuccessOK(dto.LikesResponse{Likes: likes, Count: len(likes)})
}

// ToggleLike handles POST /api/likes/toggle requests.
//
// @Summary      Like or unlike the current recipe
// @Description  Flips the liked state of the current recipe and persists the whole collection. The count tells clients whether to show the likes menu.
// @Tags         Likes
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.ToggleLikeResponse} "New liked state"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "No recipe loaded"
// @Failure      503 {object} dto.ErrorResponse "Likes could not be saved"
// @Security     BearerAuth
// @Router       /api/likes/toggle [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	result, err := h.likes.Toggle(c.Request.Context(), sess)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.ToggleLikeResponse{
		Liked: result.Liked,
		Like:  result.Like,
		Count: result.Count,
	})
}

// DeleteLike handles DELETE /api/likes/:id requests.
//
// @Summary      Unlike a recipe
// @Tags         Likes
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Recipe id"
// @Success      204 "Like removed"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Recipe not liked"
// @Failure      503 {object} dto.ErrorResponse "Likes could not be saved"
// @Security     BearerAuth
// @Router       /api/likes/{id} [delete]
func (h *Handler) DeleteLike(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	if err := h.likes.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		builder.ServiceError(err)
		return
	}
	c.Status(http.StatusNoContent)
}
