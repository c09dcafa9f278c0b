package controllers_test

import (
	"net/http"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetCurrentUser() {
	r := suite.request(http.MethodGet, "http://example.com/api/users/current", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().NotContains(r.Body.String(), "password")

	var user models.User
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("jamie", user.Username)
	suite.Assert().Equal("Jamie Smith", user.FullName)
}

func (suite *TestSuiteStandard) TestCreateUser() {
	r := suite.request(http.MethodPost, "http://example.com/api/users", map[string]any{
		"username": "alex",
		"password": "correct horse",
		"fullName": "Alex Doe",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var user models.User
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("alex", user.Username)
	suite.Assert().Nil(user.Email)

	stored, err := suite.co.Store.GetUser(suite.T().Context(), user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(stored.CheckPassword("correct horse"))
}

func (suite *TestSuiteStandard) TestCreateUserDuplicate() {
	r := suite.request(http.MethodPost, "http://example.com/api/users", map[string]any{
		"username": "jamie",
		"password": "password123",
		"fullName": "Another Jamie",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrUsernameNotUnique.Error(), suite.decodeError(&r).Error)
}

func (suite *TestSuiteStandard) TestCreateUserInvalid() {
	r := suite.request(http.MethodPost, "http://example.com/api/users", map[string]any{
		"username": "ab",
		"password": "123",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal([]string{"fullName", "password", "username"}, fieldNames(suite.decodeError(&r).Fields))
}
