package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/fi-rise/backend/internal/controllers"
	"github.com/fi-rise/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetGoals() {
	r := suite.request(http.MethodGet, "http://example.com/api/goals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals []controllers.Goal
	test.DecodeResponse(suite.T(), &r, &goals)
	suite.Require().Len(goals, 2)

	suite.Assert().Equal("Emergency Fund", goals[0].Name)
	suite.Assert().Equal(45, goals[0].Progress)
	suite.Assert().Equal("45% Complete", goals[0].Status)

	suite.Assert().Equal("Pay Off Credit Card", goals[1].Name)
	suite.Assert().Equal(25, goals[1].Progress)
	suite.Assert().Equal("25% Complete", goals[1].Status)
}

func (suite *TestSuiteStandard) TestGetGoalsCompleted() {
	r := suite.request(http.MethodPatch, "http://example.com/api/goals/2", map[string]any{"completed": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals []controllers.Goal
	r = suite.request(http.MethodGet, "http://example.com/api/goals?completed=true", nil)
	test.DecodeResponse(suite.T(), &r, &goals)
	suite.Require().Len(goals, 1)
	suite.Assert().Equal("Completed", goals[0].Status)

	r = suite.request(http.MethodGet, "http://example.com/api/goals?completed=false", nil)
	test.DecodeResponse(suite.T(), &r, &goals)
	suite.Require().Len(goals, 1)
	suite.Assert().Equal("Emergency Fund", goals[0].Name)

	r = suite.request(http.MethodGet, "http://example.com/api/goals?completed=maybe", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	r := suite.request(http.MethodPost, "http://example.com/api/goals", map[string]any{
		"name":         "Vacation",
		"targetAmount": "2000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var goal controllers.Goal
	test.DecodeResponse(suite.T(), &r, &goal)
	suite.Assert().True(goal.CurrentAmount.IsZero())
	suite.Assert().Nil(goal.TargetDate)
	suite.Assert().False(goal.Completed)
	suite.Assert().Equal(0, goal.Progress)
	suite.Assert().Equal("Just Started", goal.Status)

	r = suite.request(http.MethodGet, "http://example.com/api/goals", nil)
	var goals []controllers.Goal
	test.DecodeResponse(suite.T(), &r, &goals)
	suite.Require().Len(goals, 3)
	suite.Assert().Equal("Vacation", goals[2].Name, "goals without target date are listed last")
}

func (suite *TestSuiteStandard) TestCreateGoalInvalid() {
	r := suite.request(http.MethodPost, "http://example.com/api/goals", map[string]any{
		"name":          "V",
		"targetAmount":  "0",
		"currentAmount": "-1",
		"targetDate":    "2023-13-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal([]string{"currentAmount", "name", "targetAmount", "targetDate"}, fieldNames(suite.decodeError(&r).Fields))
}

func (suite *TestSuiteStandard) TestUpdateGoal() {
	r := suite.request(http.MethodPatch, "http://example.com/api/goals/1", map[string]any{"currentAmount": 800})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goal controllers.Goal
	test.DecodeResponse(suite.T(), &r, &goal)
	suite.Assert().True(decimal.NewFromInt(800).Equal(goal.CurrentAmount))
	suite.Assert().Equal("Almost There", goal.Status)
	suite.Assert().NotNil(goal.TargetDate)

	// Reaching the target does not complete the goal
	r = suite.request(http.MethodPatch, "http://example.com/api/goals/1", map[string]any{"currentAmount": 1200, "targetDate": nil})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &goal)
	suite.Assert().False(goal.Completed)
	suite.Assert().Equal(100, goal.Progress)
	suite.Assert().Nil(goal.TargetDate)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	r := suite.request(http.MethodDelete, "http://example.com/api/goals/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/api/goals/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no goal matching your query", suite.decodeError(&r).Error)
}

func (suite *TestSuiteStandard) TestGoalOfOtherUser() {
	co := suite.co
	co.UserID = 2

	before, err := suite.co.Store.GetGoal(suite.T().Context(), 1)
	suite.Require().Nil(err)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodPut, http.MethodDelete} {
		r := test.Request(suite.T(), co, method, fmt.Sprintf("http://example.com/api/goals/%d", 1), map[string]any{"name": "Mine now", "currentAmount": "9999", "completed": true})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r := suite.request(http.MethodGet, "http://example.com/api/goals/1", nil)
	var goal controllers.Goal
	test.DecodeResponse(suite.T(), &r, &goal)
	suite.Assert().Equal("Emergency Fund", goal.Name)

	after, err := suite.co.Store.GetGoal(suite.T().Context(), 1)
	suite.Require().Nil(err)
	suite.Assert().Equal(before.Name, after.Name)
	suite.Assert().True(before.CurrentAmount.Equal(after.CurrentAmount), "current amount changed from %s to %s", before.CurrentAmount, after.CurrentAmount)
	suite.Assert().True(before.TargetAmount.Equal(after.TargetAmount))
	suite.Assert().Equal(before.Completed, after.Completed)
	suite.Assert().Equal(before.UserID, after.UserID)
}
