package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Typed lifecycle errors → deterministic HTTP codes.
	var (
		validationErr   *domain.ValidationError
		conflictErr     *domain.ConflictError
		notFoundErr     *domain.NotFoundError
		provisioningErr *domain.ProvisioningError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &provisioningErr):
		// The lifecycle state is untouched; the caller may retry.
		log.Error().Err(err).Str("path", c.Path()).Msg("provisioning failed")
		return http.StatusBadGateway, "employee provisioning failed"
	}

	// Repository sentinels.
	switch {
	case errors.Is(err, domain.ErrApplicantNotFound):
		return http.StatusNotFound, "applicant not found"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "onboarding record not found"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee account not found"
	case errors.Is(err, domain.ErrApplicantExists):
		return http.StatusConflict, "applicant already exists"
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrLockNotAcquired):
		return http.StatusConflict, "applicant is being modified concurrently, retry"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
