package v1

import (
	"errors"
	"net/http"

	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/models"
)

// status maps an error to the HTTP status of the response.
//
// Errors without a mapping are caused by the request.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, models.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrUserEmailNotUnique):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

var (
	errMonthInvalid        = errors.New("the month must be in the format YYYY-MM")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

	errCategoryKindInvalid    = errors.New("the kind filter must be INCOME or EXPENSE")
	errTransactionTypeInvalid = errors.New("the type filter must be INCOME or EXPENSE")
	errBudgetTypeInvalid      = errors.New("the type filter must be SINGLE or MULTI")
)
