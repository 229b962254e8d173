package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errMalformedRequest = errors.New("request body is malformed")

// statusAndMessage maps an error to an HTTP status and a message meant for
// the customer. Unknown errors become a generic 500.
func statusAndMessage(err error) (int, string) {
	var partial *commands.PartialSubmissionError
	var invalid *RequestValidationError

	switch {
	case errors.As(err, &partial):
		return http.StatusBadGateway, fmt.Sprintf(
			"Your order %s may be incomplete. Your cart was kept; please check your orders before trying again.",
			partial.HeaderID)
	case errors.Is(err, commands.ErrNotAuthenticated),
		errors.Is(err, queries.ErrNotAuthenticated),
		errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized, "Please sign in to continue."
	case errors.Is(err, commands.ErrNoTimeSelected):
		return http.StatusUnprocessableEntity, "Please choose a pickup time."
	case errors.Is(err, commands.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "Your cart is empty."
	case errors.Is(err, commands.ErrPickupTimeUnavailable):
		return http.StatusConflict, "That pickup time is no longer available. Please choose another one."
	case errors.Is(err, commands.ErrSubmissionInProgress):
		return http.StatusConflict, "Your order is already being submitted."
	case errors.Is(err, commands.ErrOrderCannotBeCancelled):
		return http.StatusConflict, "Only pending orders can be cancelled."
	case errors.Is(err, commands.ErrStoreUnavailable),
		errors.Is(err, queries.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "We could not reach the order service. Please try again."
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Order not found."
	case errors.As(err, &invalid):
		return http.StatusBadRequest, "Some fields are invalid."
	case errors.Is(err, errMalformedRequest),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, "The request is invalid: " + err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "The request was cancelled."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

func writeError(c echo.Context, err error) error {
	status, message := statusAndMessage(err)

	resp := ErrorResponse{
		Code:    status,
		Message: message,
	}

	var invalid *RequestValidationError
	if errors.As(err, &invalid) {
		resp.Details = invalid.Fields
	}

	return c.JSON(status, resp)
}
