package v1_test

import (
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/internal/export"
	"github.com/samiti-app/backend/internal/models"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) TestGetTransactionsCSV() {
	suite.createTestTransaction(v1.TransactionEditable{Year: "2023", Type: models.TransactionTypeExpense, Category: "Food", Amount: decimal.NewFromInt(400)})
	suite.createTestTransaction(v1.TransactionEditable{Year: "2024", Type: models.TransactionTypeIncome, Category: "Chanda", Amount: decimal.NewFromInt(500)})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/export/csv?year=2023", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Contains(recorder.Header().Get("Content-Type"), "text/csv")
	suite.Assert().Equal("attachment; filename=finance_report_2023.csv", recorder.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(strings.NewReader(recorder.Body.String())).ReadAll()
	suite.Require().Nil(err)

	suite.Require().Len(records, 2, "only transactions of the requested year are exported")
	suite.Assert().Equal(export.CSVHeader, records[0])
	suite.Assert().Equal("EXPENSE", records[1][1])
	suite.Assert().Equal("Food", records[1][2])
}

func (suite *TestSuiteStandard) TestGetTransactionsCSVRequiresYear() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/export/csv", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
