package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
)

// ListItems handles GET /api/list requests.
//
// @Summary      Shopping list
// @Description  Returns the session's shopping list in insertion order.
// @Tags         Shopping List
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.ListResponse} "Shopping list"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/list [get]
func (h *Handler) ListItems(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(dto.ListResponse{Items: h.list.Items(sess)})
}

// AddRecipeToList handles POST /api/list/recipe requests.
//
// @Summary      Add recipe ingredients to the list
// @Description  Appends every ingredient of the current recipe, at its current servings, to the shopping list.
// @Tags         Shopping List
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      201 {object} dto.SuccessResponse{data=dto.ListResponse} "Added items"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "No recipe loaded"
// @Security     BearerAuth
// @Router       /api/list/recipe [post]
func (h *Handler) AddRecipeToList(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	added, err := h.list.AddRecipe(sess)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessCreated(dto.ListResponse{Items: added})
}

// AddListItem handles POST /api/list requests.
//
// @Summary      Add a list item
// @Description  Appends a single item to the shopping list. The count defaults to 1.
// @Tags         Shopping List
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.AddListItemRequest true "Item to add"
// @Success      201 {object} dto.SuccessResponse{data=model.ListItem} "Added item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/list [post]
func (h *Handler) AddListItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	req, ok := bindAndValidate[dto.AddListItemRequest](c, builder)
	if !ok {
		return
	}

	item, err := h.list.Add(sess, req.CountOrDefault(), req.Unit, req.Ingredient)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessCreated(item)
}

// UpdateListItem handles PATCH /api/list/:id requests.
//
// @Summary      Update an item count
// @Description  Sets the count of a shopping list item.
// @Tags         Shopping List
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "List item id"
// @Param        request body dto.UpdateListItemRequest true "New count"
// @Success      200 {object} dto.SuccessResponse{data=model.ListItem} "Updated item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Item not found"
// @Security     BearerAuth
// @Router       /api/list/{id} [patch]
func (h *Handler) UpdateListItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	req, ok := bindAndValidate[dto.UpdateListItemRequest](c, builder)
	if !ok {
		return
	}

	item, err := h.list.UpdateCount(sess, c.Param("id"), *req.Count)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(item)
}

// DeleteListItem handles DELETE /api/list/:id requests.
//
// @Summary      Remove a list item
// @Tags         Shopping List
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "List item id"
// @Success      204 "Item removed"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Item not found"
// @Security     BearerAuth
// @Router       /api/list/{id} [delete]
func (h *Handler) DeleteListItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sess, ok := currentSession(c, builder)
	if !ok {
		return
	}

	if err := h.list.Delete(sess, c.Param("id")); err != nil {
		builder.ServiceError(err)
		return
	}
	c.Status(http.StatusNoContent)
}
