package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns income, expenses and their balance for a month together with the current status of all budgets. Budget alerts are checked before the dashboard is returned.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(now())
	if query.Month != "" {
		var err error
		month, err = types.ParseMonth(query.Month)
		if err != nil {
			s := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, DashboardResponse{
				Error: &s,
			})
			return
		}
	}

	user := auth.CurrentUser(c)

	var transactions []models.Transaction
	err := models.DB.
		Where(&models.Transaction{UserID: user.ID}).
		Where("transactions.date >= ? AND transactions.date < ?", month.Time(), month.End()).
		Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	categories, err := categorySpend(user.ID, transactions)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	statuses, err := budgeting.Statuses(models.DB, user.ID, now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	_, err = budgeting.CheckAlerts(c.Request.Context(), models.DB, co.Mailer, user, statuses)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("budget alerts")
	}

	var unread int64
	err = models.DB.Model(&models.Notification{}).
		Where(&models.Notification{UserID: user.ID}).
		Where("read = ? AND dismissed = ?", false, false).
		Count(&unread).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	dashboard := Dashboard{
		Month:               month.String(),
		Income:              decimal.Zero,
		Expense:             decimal.Zero,
		Categories:          categories,
		Budgets:             statuses,
		UnreadNotifications: unread,
	}

	for _, t := range transactions {
		if t.Type == models.TransactionIncome {
			dashboard.Income = dashboard.Income.Add(t.Amount)
		} else {
			dashboard.Expense = dashboard.Expense.Add(t.Amount)
		}
	}
	dashboard.Balance = dashboard.Income.Sub(dashboard.Expense)

	url := c.GetString(string(models.DBContextURL))
	dashboard.Links = DashboardLinks{
		Transactions: fmt.Sprintf("%s/v1/transactions?fromDate=%s&untilDate=%s", url, month.Time().Format("2006-01-02"), month.End().AddDate(0, 0, -1).Format("2006-01-02")),
		Budgets:      url + "/v1/budgets",
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}

// categorySpend sums the expenses per category, highest amount first.
func categorySpend(userID uuid.UUID, transactions []models.Transaction) ([]CategorySpend, error) {
	var categories []models.Category
	err := models.DB.Where(&models.Category{UserID: userID}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	sums := make(map[uuid.UUID]*CategorySpend)
	result := make([]CategorySpend, 0)
	for _, t := range transactions {
		if t.Type != models.TransactionExpense {
			continue
		}

		// uuid.Nil collects expenses without category
		key := uuid.Nil
		if t.CategoryID != nil {
			key = *t.CategoryID
		}

		spend, ok := sums[key]
		if !ok {
			spend = &CategorySpend{CategoryID: t.CategoryID, Name: names[key], Amount: decimal.Zero}
			sums[key] = spend
		}
		spend.Amount = spend.Amount.Add(t.Amount)
	}

	for _, spend := range sums {
		result = append(result, *spend)
	}

	slices.SortFunc(result, func(a, b CategorySpend) int {
		if cmp := b.Amount.Cmp(a.Amount); cmp != 0 {
			return cmp
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	return result, nil
}
