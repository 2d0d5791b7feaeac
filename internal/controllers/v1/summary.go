package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samiti-app/backend/internal/aggregate"
	"github.com/samiti-app/backend/internal/httputil"
	"github.com/samiti-app/backend/internal/report"
)

// RegisterSummaryRoutes registers the routes for derived views with the
// RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetSummary)

	r.OPTIONS("/report", httputil.OptionsPost)
	r.POST("/report", co.CreateReport)

	r.OPTIONS("/drift", httputil.OptionsGet)
	r.GET("/drift", co.GetContributionDrift)
}

type SummaryResponse struct {
	Data  *aggregate.Summary `json:"data"`
	Error *string            `json:"error"`
}

type Report struct {
	Year string `json:"year" example:"2024"`
	Text string `json:"text"` // Opaque narrative text from the external model
}

type ReportResponse struct {
	Data  *Report `json:"data"`
	Error *string `json:"error"`
}

type DriftListResponse struct {
	Data  []aggregate.Drift `json:"data"`
	Error *string           `json:"error"`
}

// @Summary		Financial overview
// @Description	Returns totals, balance and the expense breakdown for the given year
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Param			year	query		string	true	"Fiscal year"
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	year, err := yearQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary := aggregate.Summarize(snapshot, year)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Narrative report
// @Description	Asks the external model for a narrative financial summary. Failures degrade to a fixed fallback text, never an error.
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Param			year	query		string	true	"Fiscal year"
// @Router			/v1/summary/report [post]
func (co Controller) CreateReport(c *gin.Context) {
	year, err := yearQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{Error: &e})
		return
	}

	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{Error: &e})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), co.ReportTimeout)
	defer cancel()

	text := co.Reports.Generate(ctx, report.Request{
		ClubName:        snapshot.Settings.ClubName,
		Year:            year,
		Transactions:    snapshot.Transactions,
		Budgets:         snapshot.Budgets,
		TotalCollection: aggregate.TotalIncome(snapshot, year),
		TotalExpense:    aggregate.TotalExpense(snapshot, year),
	})

	c.JSON(http.StatusOK, ReportResponse{Data: &Report{Year: year, Text: text}})
}

// @Summary		Contribution drift
// @Description	Recomputes every member's contributions from the transactions and reports mismatches with the stored ledger
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	DriftListResponse
// @Failure		500	{object}	DriftListResponse
// @Router			/v1/summary/drift [get]
func (co Controller) GetContributionDrift(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DriftListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DriftListResponse{Data: aggregate.ContributionDrift(snapshot)})
}
