// Package auth implements user login with bearer tokens.
//
// A successful login creates a Session that stores the sha256 of a random
// token. Requests authenticate with "Authorization: Bearer <token>".
// Sessions are extended when less than a third of their lifetime is left.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/moneywise/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized       = errors.New("you need to log in to access this resource")
	ErrInvalidCredentials = errors.New("the email address or password is wrong")
	ErrTooManyAttempts    = errors.New("too many login attempts, please try again later")
)

// DefaultSessionTTL is the lifetime of a session if nothing else is configured.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Login verifies the credentials and returns the user they belong to.
func Login(db *gorm.DB, email, password string) (models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	var user models.User
	err := db.Where(&models.User{Email: email}).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, err
	}

	if !user.CheckPassword(password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateSession creates a new session for the user and returns its token.
func CreateSession(db *gorm.DB, user models.User, ttl time.Duration, now time.Time) (string, models.Session, error) {
	token, err := NewToken()
	if err != nil {
		return "", models.Session{}, fmt.Errorf("could not generate token: %w", err)
	}

	session := models.Session{
		UserID:    user.ID,
		TokenHash: HashToken(token),
		ExpiresAt: now.Add(ttl).UTC(),
	}

	err = db.Create(&session).Error
	if err != nil {
		return "", models.Session{}, err
	}

	return token, session, nil
}

// Authenticate resolves a token to its user.
//
// Expired sessions are deleted and ErrSessionExpired is returned.
func Authenticate(db *gorm.DB, token string, ttl time.Duration, now time.Time) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	var session models.Session
	err := db.Where(&models.Session{TokenHash: HashToken(token)}).First(&session).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrUnauthorized
	} else if err != nil {
		return models.User{}, err
	}

	if session.Expired(now) {
		err = db.Delete(&session).Error
		if err != nil {
			return models.User{}, err
		}
		return models.User{}, models.ErrSessionExpired
	}

	if session.ExpiresAt.Sub(now) < ttl/3 {
		err = db.Model(&session).UpdateColumn("expires_at", now.Add(ttl).UTC()).Error
		if err != nil {
			return models.User{}, err
		}
	}

	var user models.User
	err = db.First(&user, session.UserID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrUnauthorized
	} else if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Logout deletes the session of the token.
func Logout(db *gorm.DB, token string) error {
	return db.Where(&models.Session{TokenHash: HashToken(token)}).Delete(&models.Session{}).Error
}

// PruneSessions deletes all sessions that expired before now.
func PruneSessions(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at <= ?", now.UTC()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
