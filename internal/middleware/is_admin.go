package middleware

import (
	"net/http"
	"time"

	"airport-booking/concourse/internal/auth"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
)

// IsAdminMiddleware lets staff users through. Must run after AuthMiddleware.
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil {
				common.RespondAppError(w, r, time.Now(), &common.AuthorizationError{Message: constants.MsgAuthRequired})
				return
			}
			if !claims.IsAdmin() {
				common.RespondAppError(w, r, time.Now(), &common.AuthorizationError{
					Message:   constants.MsgAdminRequired,
					Forbidden: true,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
