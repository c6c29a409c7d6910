// Package v1 implements the moneywise REST API.
//
// All resources except registration and login belong to the logged in
// user. Lookups are always scoped by that user, resources of other users
// are reported as not found.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/notify"
)

// Controller holds the dependencies of the API handlers.
type Controller struct {
	Mailer     notify.Mailer  // Delivers alert emails
	Throttle   *auth.Throttle // Limits login attempts
	SessionTTL time.Duration  // Lifetime of new sessions
	Version    string         // Backend version reported in exports
}

// now returns the current time in UTC.
func now() time.Time {
	return time.Now().UTC()
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	required := auth.Required(co.SessionTTL)

	r.OPTIONS("", OptionsRoot)
	r.GET("", GetRoot)
	r.DELETE("", required, co.Cleanup)

	co.RegisterAuthRoutes(r.Group("/auth"), required)

	authenticated := r.Group("", required)
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterCategoryRuleRoutes(authenticated.Group("/category-rules"))
	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterDashboardRoutes(authenticated.Group("/dashboard"))
	co.RegisterNotificationRoutes(authenticated.Group("/notifications"))
	co.RegisterBadgeRoutes(authenticated.Group("/badges"))
	co.RegisterExportRoutes(authenticated.Group("/export"))
}
