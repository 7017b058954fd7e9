package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError maps domain errors to HTTP statuses: missing entities and
// sessions are 404, out-of-order actions are 409, the login gate is
// 401, and input validation failures are 400.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, code = http.StatusConflict, "invalid_transition"
	case errors.Is(err, domain.ErrNotAuthenticated):
		status, code = http.StatusUnauthorized, "not_logged_in"
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrMissingTimeSlot),
		errors.Is(err, domain.ErrMissingBookingTime),
		errors.Is(err, domain.ErrEmptyCredentials),
		errors.Is(err, domain.ErrStoreClosed):
		status, code = http.StatusBadRequest, "invalid_request"
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Code: code, Message: err.Error()}})
}

func writeBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: errorBody{Code: "bad_request", Message: err.Error()}})
}
