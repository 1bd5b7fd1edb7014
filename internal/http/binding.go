package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
)

// validatable is implemented by request DTOs with checks gin's binding tags
// cannot express.
type validatable interface {
	Validate() error
}

// decodeRequest binds the JSON body into a T and runs its Validate method
// when T has one.
func decodeRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if v, ok := any(&req).(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// bindAndValidate decodes and validates a request body, writing the 400
// response itself on failure.
func bindAndValidate[T any](c *gin.Context, builder *ResponseBuilder) (*T, bool) {
	req, err := decodeRequest[T](c)
	if err == nil {
		return req, true
	}

	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.Invalid(verr)
	} else {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	}
	return nil, false
}
