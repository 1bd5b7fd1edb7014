package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
)

// ParseIngredients handles POST /api/ingredients/parse requests.
//
// @Summary      Parse ingredient lines
// @Description  Parses free-form ingredient lines into count, unit and ingredient text. Lines without a leading quantity get a count of 1.
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        request body dto.ParseIngredientsRequest true "Lines to parse"
// @Success      200 {object} dto.SuccessResponse{data=dto.IngredientsResponse} "Parsed ingredients"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/ingredients/parse [post]
func (h *Handler) ParseIngredients(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindAndValidate[dto.ParseIngredientsRequest](c, builder)
	if !ok {
		return
	}

	builder.SuccessOK(dto.IngredientsResponse{Ingredients: h.parser.ParseAll(req.Lines)})
}

// ScaleIngredients handles POST /api/ingredients/scale requests.
//
// @Summary      Scale ingredients
// @Description  Rescales ingredient counts from one serving count to another.
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        request body dto.ScaleIngredientsRequest true "Ingredients and serving counts"
// @Success      200 {object} dto.SuccessResponse{data=dto.IngredientsResponse} "Scaled ingredients"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/ingredients/scale [post]
func (h *Handler) ScaleIngredients(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindAndValidate[dto.ScaleIngredientsRequest](c, builder)
	if !ok {
		return
	}

	scaled, err := model.ScaleIngredients(req.Ingredients, req.From, req.To)
	if err != nil {
		metrics.RecordServingsUpdate("scale", "invalid")
		builder.ServiceError(err)
		return
	}
	metrics.RecordServingsUpdate("scale", "success")
	builder.SuccessOK(dto.IngredientsResponse{Ingredients: scaled})
}
