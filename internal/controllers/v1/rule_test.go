package v1_test

import (
	"net/http"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) TestRuleLifecycle() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/rules", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.RuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 2, "a fresh deployment has the default rules")

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/rules", v1.RuleEditable{Text: "No loud music after 10pm."}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	recorder = test.Request(suite.co, suite.T(), http.MethodDelete, "/v1/rules/"+response.Data.ID.String(), "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/rules", "", suite.authHeaders())
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 2)
}

func (suite *TestSuiteStandard) TestReplaceRules() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPut, "/v1/rules", []v1.RuleEditable{
		{Text: "Meetings are held every Sunday."},
		{Text: "Accounts are read out at the AGM."},
		{Text: "Chanda receipts are issued on the spot."},
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.RuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 3)

	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/rules", "", suite.authHeaders())
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 3, "the default rules are gone")

	recorder = test.Request(suite.co, suite.T(), http.MethodPut, "/v1/rules", []v1.RuleEditable{{Text: " "}}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateRuleEmptyText() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/rules", v1.RuleEditable{Text: "   "}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
