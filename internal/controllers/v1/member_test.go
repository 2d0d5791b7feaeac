package v1_test

import (
	"fmt"
	"net/http"
	"net/url"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/internal/models"
	"github.com/samiti-app/backend/test"
)

// createTestMember creates a member via the API and returns it.
func (suite *TestSuiteStandard) createTestMember(editable v1.MemberEditable) models.Member {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/members", editable, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateMember() {
	member := suite.createTestMember(v1.MemberEditable{
		FullName: "Saikat Saha",
		Phone:    "+91 98300 00000",
	})

	suite.Assert().Equal("Saikat Saha", member.FullName)
	suite.Assert().Equal(models.MemberRoleMember, member.Role)
	suite.Assert().Equal(100, member.CreditScore)
}

func (suite *TestSuiteStandard) TestCreateMemberEmptyName() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/members", v1.MemberEditable{}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMembers() {
	suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha", Phone: "+91 98300 00000"})
	suite.createTestMember(v1.MemberEditable{FullName: "Pinku Singha", Phone: "+91 90000 11111"})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetMembersSearch() {
	suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha", Phone: "+91 98300 00000"})
	suite.createTestMember(v1.MemberEditable{FullName: "Pinku Singha", Phone: "+91 90000 11111"})

	tests := []struct {
		search string
		count  int
	}{
		{"saikat", 1},
		{"SINGHA", 1},
		{"98300", 1},
		{"+91", 2},
		{"nobody", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members?search="+url.QueryEscape(tt.search), "", suite.authHeaders())
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.MemberListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "search %q", tt.search)
	}
}

func (suite *TestSuiteStandard) TestGetMember() {
	member := suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha"})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members/"+member.ID.String(), "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(member.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetMemberInvalidID() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members/not-a-uuid", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMemberNotFound() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members/65392deb-5e92-4268-b114-297faad6cdce", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateMember() {
	member := suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha"})

	recorder := test.Request(suite.co, suite.T(), http.MethodPatch, "/v1/members/"+member.ID.String(), v1.MemberEditable{
		FullName: "Saikat S.",
		Role:     models.MemberRoleCommittee,
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MemberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Saikat S.", response.Data.FullName)
	suite.Assert().Equal(models.MemberRoleCommittee, response.Data.Role)
}

func (suite *TestSuiteStandard) TestUpdateMemberNotFound() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPatch, "/v1/members/65392deb-5e92-4268-b114-297faad6cdce", v1.MemberEditable{
		FullName: "Nobody",
		Role:     models.MemberRoleMember,
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMember() {
	member := suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha"})

	recorder := test.Request(suite.co, suite.T(), http.MethodDelete, "/v1/members/"+member.ID.String(), "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodDelete, "/v1/members/"+member.ID.String(), "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTopContributors() {
	amounts := map[string]float64{"A": 500, "B": 300, "C": 700}
	for _, name := range []string{"A", "B", "C"} {
		member := suite.createTestMember(v1.MemberEditable{FullName: name})

		recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/transactions", map[string]any{
			"year":            "2024",
			"type":            "INCOME",
			"category":        "Chanda",
			"amount":          amounts[name],
			"relatedMemberId": member.ID.String(),
		}, suite.authHeaders())
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members/top?year=2024&limit=2", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContributorListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("C", response.Data[0].Member.FullName)
	suite.Assert().Equal("A", response.Data[1].Member.FullName)
	suite.Assert().Equal("700", response.Data[0].Amount.String())
}

func (suite *TestSuiteStandard) TestGetTopContributorsRequiresYear() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members/top", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ContributorListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the year query parameter must be set", *response.Error)
}

func (suite *TestSuiteStandard) TestMemberOptions() {
	member := suite.createTestMember(v1.MemberEditable{FullName: "Saikat Saha"})

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/members", "GET, POST"},
		{"/v1/members/top", "GET"},
		{fmt.Sprintf("/v1/members/%s", member.ID), "GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.co, suite.T(), http.MethodOptions, tt.path, "", suite.authHeaders())
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"))
	}
}
