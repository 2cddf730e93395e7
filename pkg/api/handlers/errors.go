package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/entity"
)

// errorStatus maps a source error to an HTTP status and API error body.
func errorStatus(err error, notFound string) (int, types.ErrorResponse) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, types.ErrorResponse{Error: "not_found", Message: notFound}
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest, types.ErrorResponse{Error: "validation_error", Message: err.Error()}
	case errors.Is(err, entity.ErrNotConnected):
		return http.StatusServiceUnavailable, types.ErrorResponse{Error: "storage_unavailable", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, types.ErrorResponse{Error: "timeout", Message: "Request timed out waiting for storage"}
	}
	return http.StatusInternalServerError, types.ErrorResponse{Error: "storage_error", Message: err.Error()}
}
