package v1

import (
	"time"

	"github.com/moneywise/backend/internal/models"
)

// RegisterEditable contains the data to create a new user
type RegisterEditable struct {
	Email       string `json:"email" example:"jane@example.com"`           // Email address, used to log in
	Name        string `json:"name" example:"Jane"`                        // Display name
	Password    string `json:"password" example:"correct horse"`           // Password, at least 8 characters
	Currency    string `json:"currency" example:"EUR" default:"EUR"`       // ISO 4217 code used to format amounts
	EmailAlerts bool   `json:"emailAlerts" example:"true" default:"false"` // Send budget alerts by email
}

// LoginEditable contains the credentials of a user
type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse"`
}

// UserEditable represents all user configurable parameters of the logged in user
type UserEditable struct {
	Name        string `json:"name" example:"Jane"`                        // Display name
	Currency    string `json:"currency" example:"EUR"`                     // ISO 4217 code used to format amounts
	EmailAlerts bool   `json:"emailAlerts" example:"true"`                 // Send budget alerts by email
	Password    string `json:"password,omitempty" example:"correct horse"` // New password. Only changed when set
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/auth/me"` // The user itself
}

type User struct {
	models.User
	Links UserLinks `json:"links"`
}

func newUser(url string, model models.User) User {
	return User{
		User: model,
		Links: UserLinks{
			Self: url + "/v1/auth/me",
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type Session struct {
	Token     string    `json:"token" example:"kJX2s0mS3rW4x9FQm2Zt1sVq6oJ3pN8eLwA7cYbR5dE"` // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2024-04-11T08:30:00Z"`                    // Time the session expires
	User      User      `json:"user"`                                                        // The logged in user
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                                   // The new session
	Error *string  `json:"error" example:"the email address or password is wrong"` // The error, if any occurred
}
