package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNotificationList)
		r.GET("", co.GetNotifications)

		r.OPTIONS("/dismiss-all", OptionsDismissAll)
		r.POST("/dismiss-all", co.DismissAllNotifications)
	}

	// Notification with ID
	{
		r.OPTIONS("/:id", OptionsNotificationDetail)
		r.GET("/:id", co.GetNotification)
		r.PATCH("/:id", co.UpdateNotification)
		r.DELETE("/:id", co.DeleteNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications/dismiss-all [options]
func OptionsDismissAll(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [options]
func OptionsNotificationDetail(c *gin.Context) {
	resourceOptionsDetail[models.Notification](c)
}

// @Summary		Get notifications
// @Description	Returns a list of notifications, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200			{object}	NotificationListResponse
// @Failure		400			{object}	NotificationListResponse
// @Failure		500			{object}	NotificationListResponse
// @Router			/v1/notifications [get]
// @Param			read		query	bool	false	"Has the notification been read?"
// @Param			dismissed	query	bool	false	"Has the notification been dismissed?"
// @Param			level		query	string	false	"WARNING or EXCEEDED"
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			group		query	string	false	"Filter by budget group ID"
// @Param			offset		query	uint	false	"The offset of the first Notification returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Notifications to return. Defaults to 50."
func (co Controller) GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := auth.CurrentUser(c)
	filterModel := filter.model(user.ID)

	q := models.DB.
		Order("created_at DESC").
		Where(&models.Notification{UserID: user.ID}).
		Where(&filterModel, queryFields...).
		Offset(int(filter.Offset))

	limit := listLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var notifications []models.Notification
	err := q.Find(&notifications).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Notification, 0)
	for _, notification := range notifications {
		data = append(data, newNotification(url, notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get notification
// @Description	Returns a specific notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationResponse
// @Failure		400	{object}	NotificationResponse
// @Failure		404	{object}	NotificationResponse
// @Failure		500	{object}	NotificationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [get]
func (co Controller) GetNotification(c *gin.Context) {
	notification, err := getResource[models.Notification](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	data := newNotification(c.GetString(string(models.DBContextURL)), notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &data})
}

// @Summary		Update notification
// @Description	Marks a notification as read or dismissed. Only values to be updated need to be specified.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	NotificationResponse
// @Failure		400				{object}	NotificationResponse
// @Failure		404				{object}	NotificationResponse
// @Failure		500				{object}	NotificationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/v1/notifications/{id} [patch]
func (co Controller) UpdateNotification(c *gin.Context) {
	notification, err := getResource[models.Notification](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	_, err = httputil.GetBodyFields(c, NotificationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	data := NotificationEditable{
		Read:      notification.Read,
		Dismissed: notification.Dismissed,
	}
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	notification.Read = data.Read
	notification.Dismissed = data.Dismissed

	err = models.DB.Save(&notification).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &s,
		})
		return
	}

	r := newNotification(c.GetString(string(models.DBContextURL)), notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &r})
}

// @Summary		Dismiss all notifications
// @Description	Marks all notifications of the user as read and dismissed
// @Tags			Notifications
// @Success		204
// @Failure		500	{object}	httputil.Error
// @Router			/v1/notifications/dismiss-all [post]
func (co Controller) DismissAllNotifications(c *gin.Context) {
	err := models.DB.Model(&models.Notification{}).
		Where(&models.Notification{UserID: auth.CurrentUser(c).ID}).
		Where("dismissed = ?", false).
		UpdateColumns(map[string]any{"read": true, "dismissed": true}).Error
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete notification
// @Description	Deletes a notification. The alert will be created again if the budget still crosses the threshold in the same period.
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [delete]
func (co Controller) DeleteNotification(c *gin.Context) {
	notification, err := getResource[models.Notification](c)
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	err = models.DB.Delete(&notification).Error
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
