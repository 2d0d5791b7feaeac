package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/internal/models"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) createTestBudget(editable v1.BudgetEditable) models.Budget {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/budgets", editable, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Year:   "2024",
		Amount: decimal.NewFromInt(15000),
	})

	suite.Assert().Equal("General", budget.Category)
}

func (suite *TestSuiteStandard) TestCreateBudgetWithoutYear() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/budgets", v1.BudgetEditable{Amount: decimal.NewFromInt(100)}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgetsFilter() {
	suite.createTestBudget(v1.BudgetEditable{Year: "2023", Category: "Food", Amount: decimal.NewFromInt(500)})
	suite.createTestBudget(v1.BudgetEditable{Year: "2024", Category: "Food", Amount: decimal.NewFromInt(600)})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/budgets?year=2024", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("2024", response.Data[0].Year)
}

func (suite *TestSuiteStandard) TestGetBudgetVariance() {
	suite.createTestBudget(v1.BudgetEditable{Year: "2023", Category: "Food", Amount: decimal.NewFromInt(500)})
	suite.createTestTransaction(v1.TransactionEditable{Year: "2023", Type: models.TransactionTypeExpense, Category: "Food", Amount: decimal.NewFromInt(650)})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/budgets/variance?year=2023", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetVarianceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("650", response.Data[0].Actual.String())
	suite.Assert().Equal("-150", response.Data[0].Remaining.String())
}

func (suite *TestSuiteStandard) TestGetBudgetVarianceRequiresYear() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/budgets/variance", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
