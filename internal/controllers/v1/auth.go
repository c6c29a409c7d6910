package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/auth"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for registration, login and the
// logged in user with the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup, required gin.HandlerFunc) {
	r.OPTIONS("/register", OptionsAuthPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", OptionsAuthPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/logout", OptionsAuthPost)
	r.POST("/logout", required, co.Logout)

	r.OPTIONS("/me", OptionsMe)
	r.GET("/me", required, co.GetMe)
	r.PATCH("/me", required, co.UpdateMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsAuthPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Register
// @Description	Creates a new user and logs it in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		409		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Email:       editable.Email,
		Name:        editable.Name,
		Currency:    editable.Currency,
		EmailAlerts: editable.EmailAlerts,
	}

	err = user.SetPassword(editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	co.respondSession(c, http.StatusCreated, user)
}

// @Summary		Login
// @Description	Logs in a user and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		429			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	key := models.NormalizeEmail(editable.Email)
	if co.Throttle != nil && !co.Throttle.Allow(key, time.Now()) {
		s := auth.ErrTooManyAttempts.Error()
		c.JSON(http.StatusTooManyRequests, SessionResponse{
			Error: &s,
		})
		return
	}

	user, err := auth.Login(models.DB, editable.Email, editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	if co.Throttle != nil {
		co.Throttle.Reset(key)
	}

	co.respondSession(c, http.StatusOK, user)
}

func (co Controller) respondSession(c *gin.Context, code int, user models.User) {
	token, session, err := auth.CreateSession(models.DB, user, co.SessionTTL, time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(code, SessionResponse{
		Data: &Session{
			Token:     token,
			ExpiresAt: session.ExpiresAt,
			User:      newUser(c.GetString(string(models.DBContextURL)), user),
		},
	})
}

// @Summary		Logout
// @Description	Ends the session of the bearer token
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	err := auth.Logout(models.DB, auth.Token(c))
	if err != nil {
		c.JSON(status(err), httputil.NewError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get the logged in user
// @Description	Returns the user the bearer token belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httputil.Error
// @Router			/v1/auth/me [get]
func (co Controller) GetMe(c *gin.Context) {
	user := newUser(c.GetString(string(models.DBContextURL)), auth.CurrentUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Update the logged in user
// @Description	Updates the settings of the logged in user. Only values to be updated need to be specified.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httputil.Error
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/auth/me [patch]
func (co Controller) UpdateMe(c *gin.Context) {
	user := auth.CurrentUser(c)

	_, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	// Fields that are not sent keep their current value
	editable := UserEditable{
		Name:        user.Name,
		Currency:    user.Currency,
		EmailAlerts: user.EmailAlerts,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user.Name = editable.Name
	user.Currency = editable.Currency
	user.EmailAlerts = editable.EmailAlerts

	if editable.Password != "" {
		err = user.SetPassword(editable.Password)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Save(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c.GetString(string(models.DBContextURL)), user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
