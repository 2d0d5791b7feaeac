package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterRuleRoutes registers the routes for rules with the RouterGroup
// that is passed.
func (co Controller) RegisterRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPostPut)
	r.GET("", co.GetRules)
	r.POST("", co.CreateRule)
	r.PUT("", co.ReplaceRules)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", co.DeleteRule)
}

// RuleEditable represents all user configurable parameters of a rule.
type RuleEditable struct {
	Text string `json:"text" example:"All members must pay chanda before the puja week."`
}

type RuleResponse struct {
	Data  *models.Rule `json:"data"`
	Error *string      `json:"error"`
}

type RuleListResponse struct {
	Data  []models.Rule `json:"data"`
	Error *string       `json:"error"`
}

// @Summary		List rules
// @Description	Returns the organizational rules
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleListResponse
// @Failure		500	{object}	RuleListResponse
// @Router			/v1/rules [get]
func (co Controller) GetRules(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RuleListResponse{Data: snapshot.Settings.Rules})
}

// @Summary		Create rule
// @Description	Adds an organizational rule
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		201		{object}	RuleResponse
// @Failure		400		{object}	RuleResponse
// @Param			rule	body		RuleEditable	true	"Rule"
// @Router			/v1/rules [post]
func (co Controller) CreateRule(c *gin.Context) {
	var editable RuleEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{Error: &e})
		return
	}

	rule, err := co.Ledger.AddRule(editable.Text)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, RuleResponse{Data: &rule})
}

// @Summary		Replace rules
// @Description	Replaces the whole rule list
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RuleListResponse
// @Failure		400		{object}	RuleListResponse
// @Param			rules	body		[]RuleEditable	true	"Rules"
// @Router			/v1/rules [put]
func (co Controller) ReplaceRules(c *gin.Context) {
	var editables []RuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{Error: &e})
		return
	}

	texts := make([]string, 0, len(editables))
	for _, editable := range editables {
		texts = append(texts, editable.Text)
	}

	rules, err := co.Ledger.ReplaceRules(texts)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RuleListResponse{Data: rules})
}

// @Summary		Delete rule
// @Description	Removes an organizational rule
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the rule"
// @Router			/v1/rules/{id} [delete]
func (co Controller) DeleteRule(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Ledger.RemoveRule(id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
