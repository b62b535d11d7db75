package handlers

import (
	"errors"
	"net/http"

	"outlet-service/config"
	"outlet-service/helper"
	"outlet-service/identity"
	"outlet-service/services"
	"outlet-service/store"
	"outlet-service/token"
)

// writeServiceError maps domain errors onto HTTP statuses. The error text is
// forwarded for expected failures; anything unrecognized is logged and
// returned as a generic 500 so internals never leak to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		helper.WriteJsonError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailNotConfirmed):
		helper.WriteJsonError(w, http.StatusForbidden, "Please verify your email to continue")
	case errors.Is(err, services.ErrForbidden):
		helper.WriteJsonError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, token.ErrInvalidToken):
		helper.WriteJsonError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, identity.ErrUnauthenticated):
		helper.WriteJsonError(w, http.StatusUnauthorized, "Please log in to continue")
	case errors.Is(err, store.ErrConflict):
		helper.WriteJsonError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		helper.WriteJsonError(w, http.StatusNotFound, err.Error())
	default:
		config.Config.Logger.Errorw("unexpected service error", "error", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "internal server error")
	}
}
