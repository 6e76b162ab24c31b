package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellermate/negotiator/internal/engine"
)

// engineError translates engine sentinel errors into HTTP status errors.
func engineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, engine.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
