package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"airport-booking/concourse/internal/auth"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// decodeBody reads a JSON body into dst. Malformed JSON is a validation error.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return common.NewValidationError("non_field_errors", constants.MsgInvalidBody)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return common.NewValidationError(typeErr.Field, "invalid value type, expected "+typeErr.Type.String())
		}
		return common.NewValidationError("non_field_errors", constants.MsgInvalidBody)
	}
	return nil
}

// pathID parses the {id} URL parameter
func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, common.NewValidationError("id", constants.MsgInvalidID)
	}
	return uint(id), nil
}

// callerClaims returns the authenticated caller. Routes behind AuthMiddleware always have one.
func callerClaims(r *http.Request) (auth.UserClaims, error) {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		return nil, &common.AuthorizationError{Message: constants.MsgAuthRequired}
	}
	return claims, nil
}
