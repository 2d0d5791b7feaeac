package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/internal/models"
	"github.com/samiti-app/backend/internal/report"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) TestGetSummary() {
	suite.createTestTransaction(v1.TransactionEditable{Year: "2023", Type: models.TransactionTypeIncome, Category: "Chanda", Amount: decimal.NewFromInt(1000)})
	suite.createTestTransaction(v1.TransactionEditable{Year: "2023", Type: models.TransactionTypeExpense, Category: "Food", Amount: decimal.NewFromInt(400)})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/summary?year=2023", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("1000", response.Data.TotalIncome.String())
	suite.Assert().Equal("400", response.Data.TotalExpense.String())
	suite.Assert().Equal("600", response.Data.Balance.String())
	suite.Assert().Equal("400", response.Data.ExpenseByCategory["Food"].String())
}

func (suite *TestSuiteStandard) TestGetSummaryRequiresYear() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/summary", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateReportFallback() {
	// The suite runs without an API key, so the report degrades to the
	// fixed fallback text instead of an error
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/summary/report?year=2023", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("2023", response.Data.Year)
	suite.Assert().Equal(report.FallbackNoKey, response.Data.Text)
}

func (suite *TestSuiteStandard) TestGetContributionDrift() {
	member := suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha"})
	suite.createTestTransaction(v1.TransactionEditable{
		Year:            "2023",
		Type:            models.TransactionTypeIncome,
		Amount:          decimal.NewFromInt(500),
		RelatedMemberID: &member.ID,
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/summary/drift", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DriftListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Empty(response.Data, "a healthy ledger has no drift")
}
