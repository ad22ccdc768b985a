package middleware

import (
	"net/http"
	"strings"
	"time"

	"airport-booking/concourse/internal/auth"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/constants"
	"airport-booking/concourse/internal/db/repositories"
	"airport-booking/concourse/internal/logging"
)

// AuthMiddleware accepts either a bearer access token or an X-API-Key and stores
// the resulting claims on the request context. Anything else is a 401.
func AuthMiddleware(signer *common.TokenSigner, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				verified, err := signer.ValidateToken(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
				if err != nil {
					logging.FromContext(r.Context()).Debugw("Rejected bearer token", "error", err)
					common.RespondAppError(w, r, initTime, &common.AuthorizationError{Message: err.Error()})
					return
				}
				claims = &auth.JWTClaims{
					UserIDValue: verified.UserID,
					RoleValue:   constants.RoleFor(verified.Admin),
					JTI:         verified.TokenID,
					Expiry:      verified.ExpiresAt,
				}

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					common.RespondAppError(w, r, initTime, err)
					return
				}
				if keyRes == nil {
					common.RespondAppError(w, r, initTime, &common.AuthorizationError{Message: "invalid API key"})
					return
				}
				if !keyRes.Status || !keyRes.IsActive {
					common.RespondAppError(w, r, initTime, &common.AuthorizationError{Message: "inactive API key"})
					return
				}
				claims = &auth.APIKeyClaims{
					UserIDValue: keyRes.UserID,
					RoleValue:   constants.RoleFor(keyRes.IsStaff),
					KeyID:       keyRes.ID,
				}

			default:
				common.RespondAppError(w, r, initTime, &common.AuthorizationError{Message: constants.MsgAuthRequired})
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			ctx = logging.With(ctx, "user_id", claims.UserID(), "auth", claims.Source())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
