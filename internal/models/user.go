package models

import (
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

const (
	DefaultCurrency   = "EUR"
	MinPasswordLength = 8
)

// PasswordCost is the bcrypt cost used for new password hashes.
var PasswordCost = bcrypt.DefaultCost

// User is a person using moneywise. All other resources belong to exactly one user.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"` // Email address, used to log in
	Name         string `json:"name" example:"Jane"`                                 // Display name
	PasswordHash string `json:"-"`
	Currency     string `json:"currency" example:"EUR"`     // ISO 4217 code used to format amounts
	EmailAlerts  bool   `json:"emailAlerts" example:"true"` // Send budget alerts by email
}

// NormalizeEmail returns the canonical form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPassword hashes the password and stores the hash on the user.
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)

	address, err := mail.ParseAddress(u.Email)
	if err != nil || address.Address != u.Email {
		return ErrUserEmailInvalid
	}

	u.Currency = strings.ToUpper(strings.TrimSpace(u.Currency))
	if u.Currency == "" {
		u.Currency = DefaultCurrency
	}

	if _, err := currency.ParseISO(u.Currency); err != nil {
		return ErrUserCurrencyInvalid
	}

	return nil
}
