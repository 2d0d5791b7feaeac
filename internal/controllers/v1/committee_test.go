package v1_test

import (
	"net/http"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) TestGetCommitteeDefaults() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/committee", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CommitteeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Data, 5, "a fresh deployment has the default roster")
}

func (suite *TestSuiteStandard) TestCommitteeLifecycle() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/committee", v1.CommitteeMemberEditable{
		Name: "New Seat",
		Role: "Treasurer",
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CommitteeMemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	id := response.Data.ID.String()

	recorder = test.Request(suite.co, suite.T(), http.MethodPatch, "/v1/committee/"+id, v1.CommitteeMemberEditable{
		Name: "New Seat",
		Role: "Joint Treasurer",
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Joint Treasurer", response.Data.Role)

	recorder = test.Request(suite.co, suite.T(), http.MethodDelete, "/v1/committee/"+id, "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodDelete, "/v1/committee/"+id, "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateDefaultCommitteeSeat() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/committee", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.CommitteeListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 5)

	// The IDs handed out by the list must stay valid on a fresh deployment
	recorder = test.Request(suite.co, suite.T(), http.MethodPatch, "/v1/committee/"+list.Data[0].ID.String(), v1.CommitteeMemberEditable{
		Name: "Rahul Singha",
		Role: list.Data[0].Role,
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CommitteeMemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Rahul Singha", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCreateCommitteeMemberEmptyName() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/committee", v1.CommitteeMemberEditable{Role: "Treasurer"}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
