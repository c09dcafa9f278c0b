package controllers

import (
	"net/http"

	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.CreateUser)

	r.OPTIONS("/current", httputil.OptionsGet)
	r.GET("/current", co.GetCurrentUser)
}

// @Summary		Get current user
// @Description	Returns the user all requests are made for
// @Tags			Users
// @Produce		json
// @Success		200	{object}	models.User
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/users/current [get]
func (co Controller) GetCurrentUser(c *gin.Context) {
	user, err := co.Store.GetUser(c.Request.Context(), co.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UserEditable are the fields of a user that can be set by the client.
type UserEditable struct {
	Username string  `json:"username" example:"jamie"`
	Password string  `json:"password" example:"password123"`
	FullName string  `json:"fullName" example:"Jamie Smith"`
	Email    *string `json:"email" example:"jamie@example.com"`
}

// @Summary		Create user
// @Description	Creates a new user. The password is stored as a bcrypt hash.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.User
// @Failure		400		{object}	validationError
// @Failure		500		{object}	httpError
// @Param			user	body		UserEditable	true	"User"
// @Router			/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	p, err := httputil.Payload(c, validation.UserCreate)
	if err != nil {
		writeError(c, err)
		return
	}

	create := models.UserCreate{
		Username: p.String("username"),
		Password: p.String("password"),
		FullName: p.String("fullName"),
		Email:    p.OptionalString("email"),
	}
	if err := p.Err(); err != nil {
		writeError(c, err)
		return
	}

	user, err := create.Model()
	if err != nil {
		writeError(c, err)
		return
	}

	user, err = co.Store.CreateUser(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
