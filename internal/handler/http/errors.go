package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SageMyrloc/FinalProject/internal/service"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorTable maps service errors to a status and a client-safe message.
var errorTable = []errorMapping{
	{service.ErrMissingFields, http.StatusBadRequest, "Missing fields"},
	{service.ErrPasswordMismatch, http.StatusBadRequest, "Passwords do not match"},
	{service.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{service.ErrInvalidActivity, http.StatusBadRequest, "Invalid activity type"},
	{service.ErrInvalidCategory, http.StatusBadRequest, "Invalid category"},
	{service.ErrRegistrationFailed, http.StatusBadRequest, "Username or email already exists"},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid username or password"},
	{service.ErrSessionInvalid, http.StatusUnauthorized, "Authentication required"},
	{service.ErrEmailMismatch, http.StatusForbidden, "Email does not match our records."},
	{service.ErrForbidden, http.StatusForbidden, "You may only log activities for your own account."},
	{service.ErrUserNotFound, http.StatusNotFound, "No such user found."},
	{service.ErrItemNotFound, http.StatusNotFound, "Item not found."},
	{service.ErrLogNotFound, http.StatusNotFound, "Log not found."},
}

const internalErrorMessage = "An unexpected error occurred"

// MessageOverride replaces the default client message for one error.
type MessageOverride struct {
	target  error
	message string
}

func WithMessage(target error, message string) MessageOverride {
	return MessageOverride{target: target, message: message}
}

// StatusFor returns the HTTP status for a service error.
func StatusFor(err error) int {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// HandleServiceError writes the JSON error reply for err. Unknown errors are
// logged and answered with a generic 500 so no internals reach the client.
func HandleServiceError(c *gin.Context, err error, overrides ...MessageOverride) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled internal server error")
		ErrorResponse(c, status, internalErrorMessage)
		return
	}
	for _, o := range overrides {
		if errors.Is(err, o.target) {
			ErrorResponse(c, status, o.message)
			return
		}
	}
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			ErrorResponse(c, status, m.message)
			return
		}
	}
}
