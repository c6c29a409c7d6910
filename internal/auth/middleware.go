package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	contextUser  = "moneywise-user"
	contextToken = "moneywise-token"
)

// Required rejects requests without a valid session with HTTP 401.
// For valid sessions, the user is stored in the context.
func Required(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httputil.Abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		user, err := Authenticate(models.DB, token, ttl, time.Now())
		if err != nil {
			if errors.Is(err, models.ErrGeneral) {
				httputil.Abort(c, http.StatusInternalServerError, err)
				return
			}

			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("authentication failed")
			httputil.Abort(c, http.StatusUnauthorized, err)
			return
		}

		c.Set(contextUser, user)
		c.Set(contextToken, token)
		c.Next()
	}
}

// CurrentUser returns the user authenticated by Required.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.MustGet(contextUser).(models.User)
	return user
}

// Token returns the bearer token of the request, if authenticated.
func Token(c *gin.Context) string {
	return c.GetString(contextToken)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
