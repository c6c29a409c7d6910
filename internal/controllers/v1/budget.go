package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/budgeting"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)

		r.OPTIONS("/:id/status", OptionsBudgetStatus)
		r.GET("/:id/status", co.GetBudgetStatus)

		r.OPTIONS("/:id/reset", OptionsBudgetReset)
		r.POST("/:id/reset", co.ResetBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail[models.Budget](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/status [options]
func OptionsBudgetStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/reset [options]
func OptionsBudgetReset(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create budget
// @Description	Creates new budgets. A MULTI budget without groupId starts a new budget group, other MULTI budgets join the group.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	user := auth.CurrentUser(c)
	url := c.GetString(string(models.DBContextURL))

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}
	created := 0

	for _, editable := range editables {
		budget := editable.model(user.ID)

		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		created++
		data := newBudget(url, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	if created > 0 {
		co.refreshBudgets(c, user)
		co.unlockBadges(c, user)
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns a list of budgets. The reset policy is applied before the budgets are returned.
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	BudgetListResponse
// @Failure		500			{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			type		query	string	false	"SINGLE or MULTI"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			group		query	string	false	"Filter by budget group ID"
// @Param			archived	query	bool	false	"Is the budget archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := auth.CurrentUser(c)

	filterModel, err := filter.model(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	_, err = budgeting.ApplyResets(models.DB, user.ID, now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC, created_at ASC").
		Where(&models.Budget{UserID: user.ID}).
		Where(&filterModel, queryFields...)

	q = nameNoteFilters(q, setFields, filter.Name, filter.Note, filter.Search)
	q = q.Offset(int(filter.Offset))

	limit := listLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Budget, 0)
	for _, budget := range budgets {
		data = append(data, newBudget(url, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// currentBudget returns the budget from the URI with the reset policy applied.
func currentBudget(c *gin.Context) (models.Budget, error) {
	budget, err := getResource[models.Budget](c)
	if err != nil {
		return models.Budget{}, err
	}

	if budgeting.Rollover(&budget, now()) {
		_, err = budgeting.ApplyResets(models.DB, budget.UserID, now())
		if err != nil {
			return models.Budget{}, err
		}
	}

	return budget, nil
}

// @Summary		Get budget
// @Description	Returns a specific budget. The reset policy is applied before the budget is returned.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, err := currentBudget(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c.GetString(string(models.DBContextURL)), budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budget status
// @Description	Returns the spend status of the budget in its current period. For budgets of a group, the status of the whole group is returned.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetStatusResponse
// @Failure		400	{object}	BudgetStatusResponse
// @Failure		404	{object}	BudgetStatusResponse
// @Failure		500	{object}	BudgetStatusResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/status [get]
func (co Controller) GetBudgetStatus(c *gin.Context) {
	budget, err := getResource[models.Budget](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &s,
		})
		return
	}

	spendStatus, err := budgeting.BudgetStatus(models.DB, budget, now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetStatusResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetStatusResponse{Data: &spendStatus})
}

// @Summary		Reset budget
// @Description	Starts a new period for the budget now. For budgets of a group, all budgets of the group are reset.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/reset [post]
func (co Controller) ResetBudget(c *gin.Context) {
	budget, err := getResource[models.Budget](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	members, err := budget.Members(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	t := now()
	for i := range members {
		err = budgeting.Reset(models.DB, &members[i], t)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetResponse{
				Error: &s,
			})
			return
		}

		if members[i].ID == budget.ID {
			budget = members[i]
		}
	}

	data := newBudget(c.GetString(string(models.DBContextURL)), budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified. Type and group cannot be changed. The due day is applied to all budgets of a group.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, err := getResource[models.Budget](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	_, err = httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget("", budget).BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	// The period is not editable
	updated := data.model(budget.UserID)
	updated.DefaultModel = budget.DefaultModel
	updated.MonthKey = budget.MonthKey
	updated.LastExpenseReset = budget.LastExpenseReset
	updated.DueDate = budget.DueDate

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	co.refreshBudgets(c, auth.CurrentUser(c))

	r := newBudget(c.GetString(string(models.DBContextURL)), updated)
	c.JSON(http.StatusOK, BudgetResponse{Data: &r})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Its notifications are deleted, assigned transactions keep existing without a budget.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, err := getResource[models.Budget](c)
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
