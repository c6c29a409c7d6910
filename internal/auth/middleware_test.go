package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/test"
)

func (suite *TestSuiteStandard) TestRequired() {
	user := suite.createUser("jane@example.com", "correct horse")
	token, _, err := auth.CreateSession(models.DB, user, time.Hour, time.Now())
	suite.Require().Nil(err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"Valid token", "Bearer " + token, http.StatusOK},
		{"Lower case scheme", "bearer " + token, http.StatusOK},
		{"No header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Unknown token", "Bearer 0123456789", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.GET("/", auth.Required(time.Hour), func(c *gin.Context) {
				suite.Assert().Equal(user.ID, auth.CurrentUser(c).ID)
				suite.Assert().Equal(token, auth.Token(c))
				c.Status(http.StatusOK)
			})

			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			suite.Assert().Equal(tt.status, w.Code)
			if tt.status != http.StatusOK {
				suite.Assert().NotEmpty(test.DecodeError(t, w.Body.Bytes()))
			}
		})
	}
}
