package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/httputil"
)

// RegisterAuthRoutes registers the routes for the authentication gate with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.Logout)
}

type LoginRequest struct {
	Password string `json:"password" example:"admin"`
}

type Session struct {
	Token string `json:"token" example:"f3f4b1f0-4b8c-4d8e-9121-c9b1a6a4f3a2"`
}

type LoginResponse struct {
	Data  *Session `json:"data"`
	Error *string  `json:"error"`
}

// @Summary		Log in
// @Description	Compares the supplied password with the stored admin secret and issues a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		400		{object}	LoginResponse
// @Failure		401		{object}	LoginResponse
// @Param			login	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var request LoginRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	token, err := co.Sessions.Login(request.Password, snapshot.Settings.AdminPassword)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &Session{Token: token}})
}

// @Summary		Log out
// @Description	Invalidates the session token sent in the Authorization header
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	co.Sessions.Logout(bearerToken(c))
	c.Status(http.StatusNoContent)
}

// RequireSession rejects requests that do not carry a live session token.
func (co Controller) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !co.Sessions.Verify(bearerToken(c)) {
			c.AbortWithStatusJSON(status(errNoSession), httpError{Error: errNoSession.Error()})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
