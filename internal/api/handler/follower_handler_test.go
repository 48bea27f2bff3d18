package handler

import (
	"Birdseye/internal/api/dto"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsService struct {
	gotSortBy        string
	gotActivityLevel string
}

func (s *stubAnalyticsService) GetNonFollowers(_ context.Context, _, sortBy string) (*dto.NonFollowersDTO, error) {
	s.gotSortBy = sortBy
	return &dto.NonFollowersDTO{Sort: sortBy, Users: []*dto.FollowerDTO{}}, nil
}

func (s *stubAnalyticsService) GetEngagementSummary(_ context.Context, _, _ string) (*dto.EngagementSummaryDTO, error) {
	return &dto.EngagementSummaryDTO{}, nil
}

func (s *stubAnalyticsService) GetGrowthSummary(_ context.Context, _ string, _ int) (*dto.GrowthSummaryDTO, error) {
	return &dto.GrowthSummaryDTO{}, nil
}

func (s *stubAnalyticsService) GetDemographics(_ context.Context, _ string) (*dto.DemographicsDTO, error) {
	return &dto.DemographicsDTO{}, nil
}

func (s *stubAnalyticsService) GetInactiveFollowers(_ context.Context, _, activityLevel string) (*dto.InactiveFollowersDTO, error) {
	s.gotActivityLevel = activityLevel
	return &dto.InactiveFollowersDTO{Rows: []*dto.InactiveFollowerDTO{}}, nil
}

func performRequest(t *testing.T, handlerFunc gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var err error
	c.Request, err = http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Set("user_id", "user-1")
	handlerFunc(c)
	return w
}

func TestNonFollowersReadsSortByQuery(t *testing.T) {
	analyticsSvc := &stubAnalyticsService{}
	h := NewFollowerHandler(nil, analyticsSvc)

	w := performRequest(t, h.NonFollowers, "/api/followers/non-followers?sortBy=followers_asc")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "followers_asc", analyticsSvc.gotSortBy)
}

func TestInactiveReadsActivityLevelQuery(t *testing.T) {
	analyticsSvc := &stubAnalyticsService{}
	h := NewFollowerHandler(nil, analyticsSvc)

	w := performRequest(t, h.Inactive, "/api/followers/inactive?activityLevel=dormant")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dormant", analyticsSvc.gotActivityLevel)
}
