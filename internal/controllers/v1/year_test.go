package v1_test

import (
	"net/http"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) TestGetYears() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/years", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.YearListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal([]string{"2023", "2024", "2025", "2026"}, response.Data)
}

func (suite *TestSuiteStandard) TestCreateYear() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/years", v1.YearEditable{Year: "2020"}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.YearListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal([]string{"2020", "2023", "2024", "2025", "2026"}, response.Data, "the set stays sorted")
}

func (suite *TestSuiteStandard) TestCreateYearDuplicate() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/years", v1.YearEditable{Year: "2024"}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.YearListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("this fiscal year already exists", *response.Error)
}

func (suite *TestSuiteStandard) TestCreateYearEmpty() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/years", v1.YearEditable{Year: "  "}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
