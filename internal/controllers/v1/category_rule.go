package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", co.GetCategoryRules)
		r.POST("", co.CreateCategoryRules)
	}

	// Category rule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", co.GetCategoryRule)
		r.PATCH("/:id", co.UpdateCategoryRule)
		r.DELETE("/:id", co.DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	resourceOptionsDetail[models.CategoryRule](c)
}

// @Summary		Create category rules
// @Description	Creates category rules from the list of submitted category rule data. The response code is the highest response code number that a single category rule creation would have caused. If it is not equal to 201, at least one category rule has an error.
// @Tags			Category Rules
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		404		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"Category Rules"
// @Router			/v1/category-rules [post]
func (co Controller) CreateCategoryRules(c *gin.Context) {
	var editables []CategoryRuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	user := auth.CurrentUser(c)
	url := c.GetString(string(models.DBContextURL))

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model(user.ID)

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryRule(url, rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get category rules
// @Description	Returns a list of category rules, ordered by priority
// @Tags			Category Rules
// @Produce		json
// @Success		200			{object}	CategoryRuleListResponse
// @Failure		400			{object}	CategoryRuleListResponse
// @Failure		500			{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by match"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			offset		query	uint	false	"The offset of the first Category Rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Category Rules to return. Defaults to 50."
func (co Controller) GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := auth.CurrentUser(c)
	filterModel := filter.model(user.ID)

	q := models.DB.
		Order("priority ASC, created_at ASC").
		Where(&models.CategoryRule{UserID: user.ID}).
		Where(&filterModel, queryFields...)

	q = textFilter(q, `"match"`, filter.Match, false)

	q = q.Offset(int(filter.Offset))

	limit := listLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var rules []models.CategoryRule
	err := q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]CategoryRule, 0)
	for _, rule := range rules {
		data = append(data, newCategoryRule(url, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func (co Controller) GetCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryRule(c.GetString(string(models.DBContextURL)), rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Update category rule
// @Description	Update a category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category Rule"
// @Router			/v1/category-rules/{id} [patch]
func (co Controller) UpdateCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	_, err = httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryRule("", rule).CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	updated := data.model(rule.UserID)
	updated.DefaultModel = rule.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	r := newCategoryRule(c.GetString(string(models.DBContextURL)), updated)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &r})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func (co Controller) DeleteCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c)
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
