package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/samiti-app/backend/internal/aggregate"
	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets with the RouterGroup
// that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)

	r.OPTIONS("/variance", httputil.OptionsGet)
	r.GET("/variance", co.GetBudgetVariance)
}

// BudgetEditable represents all user configurable parameters of a budget row.
type BudgetEditable struct {
	Year     string          `json:"year" example:"2024"`
	Category string          `json:"category" example:"Decoration" default:"General"`
	Amount   decimal.Decimal `json:"amount" example:"15000"`
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Year:     editable.Year,
		Category: editable.Category,
		Amount:   editable.Amount,
	}
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`
	Error *string        `json:"error"`
}

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`
	Error *string         `json:"error"`
}

type BudgetVarianceResponse struct {
	Data  []aggregate.VarianceRow `json:"data"`
	Error *string                 `json:"error"`
}

// @Summary		List budgets
// @Description	Returns budget rows, optionally filtered by year
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			year	query		string	false	"Filter by fiscal year"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	year := c.Query("year")

	budgets := make([]models.Budget, 0, len(snapshot.Budgets))
	for _, budget := range snapshot.Budgets {
		if year != "" && budget.Year != year {
			continue
		}
		budgets = append(budgets, budget)
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// @Summary		Create budget
// @Description	Adds a budget row. Duplicate (year, category) rows are allowed.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.Ledger.AddBudget(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// @Summary		Budget variance
// @Description	Returns budget-vs-actual rows for the given year. Rows sharing a category are each compared against the same actual total.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetVarianceResponse
// @Failure		400		{object}	BudgetVarianceResponse
// @Param			year	query		string	true	"Fiscal year"
// @Router			/v1/budgets/variance [get]
func (co Controller) GetBudgetVariance(c *gin.Context) {
	year, err := yearQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetVarianceResponse{Error: &e})
		return
	}

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetVarianceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetVarianceResponse{Data: aggregate.BudgetVariance(snapshot, year)})
}
