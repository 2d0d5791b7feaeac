package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/ledger"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterSettingsRoutes registers the routes for the settings with the
// RouterGroup that is passed.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)

	r.OPTIONS("/password", httputil.OptionsPost)
	r.POST("/password", co.UpdatePassword)
}

type SettingsResponse struct {
	Data  *models.AppSettings `json:"data"`
	Error *string             `json:"error"`
}

// PasswordEditable is the request body for changing the admin secret.
type PasswordEditable struct {
	Password string `json:"password" example:"new-secret"`
}

// @Summary		Get settings
// @Description	Returns the organization settings. The admin secret is never included.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	settings := snapshot.Settings
	settings.AdminPassword = ""

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update identity
// @Description	Replaces the organization identity. Password and rules are not touched.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Param			identity	body		ledger.Identity	true	"Identity"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	var identity ledger.Identity

	err := httputil.BindData(c, &identity)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	settings, err := co.Ledger.UpdateIdentity(identity)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	settings.AdminPassword = ""
	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Change admin secret
// @Description	Replaces the shared admin secret
// @Tags			Settings
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Param			password	body		PasswordEditable	true	"New password"
// @Router			/v1/settings/password [post]
func (co Controller) UpdatePassword(c *gin.Context) {
	var editable PasswordEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Ledger.SetAdminPassword(editable.Password); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
