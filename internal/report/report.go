// Package report asks an external model for a narrative financial summary.
//
// The output is opaque text that is passed straight through to the caller.
// Any failure, from a missing credential to a transport error, degrades to a
// fixed fallback string; this package never surfaces an error.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/samiti-app/backend/internal/models"
)

// Fallback strings returned instead of a narrative when generation is not
// possible.
const (
	FallbackNoKey = "API Key missing. Cannot generate report."
	FallbackError = "Failed to generate report due to an error."
	FallbackEmpty = "No analysis available."
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Request carries the aggregated numbers the narrative is based on.
type Request struct {
	ClubName        string
	Year            string
	Transactions    []models.Transaction
	Budgets         []models.Budget
	TotalCollection decimal.Decimal
	TotalExpense    decimal.Decimal
}

// Generator produces a narrative report for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) string
}

// Gemini is a Generator backed by the Gemini API.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini returns a Gemini generator. An empty model selects DefaultModel.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}

	return &Gemini{apiKey: apiKey, model: model}
}

// Generate requests a narrative summary. It honors context cancellation and
// always returns a usable string.
func (g *Gemini) Generate(ctx context.Context, req Request) string {
	if g.apiKey == "" {
		return FallbackNoKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("report: client setup failed")
		return FallbackError
	}

	response, err := client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(req)), nil)
	if err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("report: generation failed")
		return FallbackError
	}

	text := response.Text()
	if text == "" {
		return FallbackEmpty
	}

	return text
}

// Prompt builds the instruction text sent to the model.
func Prompt(req Request) string {
	var expenses strings.Builder
	for _, transaction := range req.Transactions {
		if transaction.Year == req.Year && transaction.Type == models.TransactionTypeExpense {
			fmt.Fprintf(&expenses, "- %s: ₹%s\n", transaction.Category, transaction.Amount)
		}
	}

	var budgets strings.Builder
	for _, budget := range req.Budgets {
		if budget.Year == req.Year {
			fmt.Fprintf(&budgets, "- %s: ₹%s\n", budget.Category, budget.Amount)
		}
	}

	return fmt.Sprintf(`You are a financial advisor for the %q.
Analyze the following data for the year %s:

Total Collection: ₹%s
Total Expense: ₹%s
Balance: ₹%s

Expense Categories Breakdown:
%s
Budget Plan:
%s
Please provide a brief, professional summary (3-4 bullet points) in English.
Highlight any overspending compared to budget, suggest savings, and comment on the financial health.`,
		req.ClubName,
		req.Year,
		req.TotalCollection,
		req.TotalExpense,
		req.TotalCollection.Sub(req.TotalExpense),
		expenses.String(),
		budgets.String(),
	)
}
