package service

import (
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/xapi"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricTweet(likes, retweets, replies int, text string) xapi.Tweet {
	return xapi.Tweet{
		Text:      text,
		CreatedAt: time.Now(),
		PublicMetrics: xapi.TweetMetrics{
			LikeCount:    likes,
			RetweetCount: retweets,
			ReplyCount:   replies,
		},
	}
}

func TestScoreEngagementFormula(t *testing.T) {
	now := time.Now()
	tweets := []xapi.Tweet{
		metricTweet(3, 2, 1, "hello @Alice how are you"),
		metricTweet(1, 0, 0, "unrelated"),
	}

	stat := scoreEngagement(snapshotFor("9"), tweets, "alice", now)

	// 4 + 2*2 + 3*1 + 5*1 = 16
	assert.Equal(t, 4, stat.LikesReceived)
	assert.Equal(t, 2, stat.RetweetsReceived)
	assert.Equal(t, 1, stat.RepliesReceived)
	assert.Equal(t, 1, stat.MentionsCount)
	assert.Equal(t, 16, stat.EngagementScore)
	assert.Equal(t, model.TierPassive, stat.EngagementTier)
}

func TestScoreEngagementTierBoundaries(t *testing.T) {
	now := time.Now()

	cases := []struct {
		likes int
		want  string
	}{
		{0, model.TierGhost},
		{9, model.TierGhost},
		{10, model.TierPassive},
		{39, model.TierPassive},
		{40, model.TierEngaged},
		{99, model.TierEngaged},
		{100, model.TierHighValue},
	}
	for _, tc := range cases {
		stat := scoreEngagement(snapshotFor("9"), []xapi.Tweet{metricTweet(tc.likes, 0, 0, "x")}, "alice", now)
		assert.Equal(t, tc.want, stat.EngagementTier, "likes=%d", tc.likes)
	}
}

func TestEngagementAnalyzeUpserts(t *testing.T) {
	userRepo := &fakeUserRepo{}
	accountRepo := &fakeXAccountRepo{}
	followerRepo := &fakeFollowerSnapshotRepo{}
	statRepo := &fakeEngagementStatRepo{}

	client := &fakeXClient{
		tweetsFn: func(_ context.Context, _, _ string, _ int) (*xapi.TweetPage, error) {
			return &xapi.TweetPage{Data: []xapi.Tweet{metricTweet(50, 0, 0, "x")}}, nil
		},
	}
	xauthSvc := NewXAuthService(userRepo, accountRepo, client)
	svc := NewEngagementService(followerRepo, statRepo, xauthSvc, client)

	user := newTestUser(t, userRepo, "bob@example.com", "bob")
	account := newTestAccount(t, accountRepo, user, "42", "alice")

	ctx := context.Background()
	require.NoError(t, followerRepo.InsertBatch(ctx, []*model.FollowerSnapshot{
		{XAccountID: account.ID, FollowerXUserID: "9", SnapshotDate: time.Now()},
	}))

	require.NoError(t, svc.Analyze(ctx, account))
	require.NoError(t, svc.Analyze(ctx, account))

	stats, err := statRepo.Find(ctx, account.ID, "")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, model.TierEngaged, stats[0].EngagementTier)
}
