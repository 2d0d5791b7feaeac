package v1_test

import (
	"net/http"

	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/test"
)

func (suite *TestSuiteStandard) TestLogin() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{Password: "admin"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.Token)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{Password: "letmein"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLoginInvalidBody() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", `{ password`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLoginAfterPasswordChange() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/settings/password", v1.PasswordEditable{Password: "new-secret"}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{Password: "admin"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", v1.LoginRequest{Password: "new-secret"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestProtectedWithoutSession() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members", "", map[string]string{"Authorization": "Bearer not-a-token"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLogout() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/logout", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/members", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
