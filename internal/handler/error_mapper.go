package handler

import (
	"errors"
	"log/slog"

	"github.com/forgo/pokedex/api/internal/model"
	"github.com/forgo/pokedex/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrPokemonNotFound):
		return model.NewNotFoundError(err.Error())

	// ===== Duplicate Errors → 400 =====
	case errors.Is(err, service.ErrDuplicateEntry):
		return model.NewAlreadyExistsError(err.Error())

	// ===== Invalid Argument → 400 =====
	case errors.Is(err, service.ErrInvalidArgument):
		return model.NewBadRequestError(err.Error())

	// ===== Upstream Errors → 502 =====
	case errors.Is(err, service.ErrSeedFetch):
		return model.NewBadGatewayError(err.Error())

	// ===== Internal → 500 =====
	case errors.Is(err, service.ErrInternal):
		return model.NewInternalError(err.Error())

	// ===== Default → 500 =====
	default:
		slog.Error("unmapped service error", slog.String("error", err.Error()))
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// naming the operation that failed when the cause is internal.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = "Can't " + operation + " Pokemon - Check server logs"
	}
	return pd
}
