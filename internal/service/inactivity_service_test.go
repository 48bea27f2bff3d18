package service

import (
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/xapi"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tweetAgedDays(days int, now time.Time) xapi.Tweet {
	return xapi.Tweet{CreatedAt: now.AddDate(0, 0, -days).Add(-time.Hour)}
}

// tweetAgedExactly 推文落在整天边界上，用于卡阈值本身
func tweetAgedExactly(days int, now time.Time) xapi.Tweet {
	return xapi.Tweet{CreatedAt: now.Add(-time.Duration(days) * 24 * time.Hour)}
}

func snapshotFor(followerID string) *model.FollowerSnapshot {
	return &model.FollowerSnapshot{FollowerXUserID: followerID}
}

func TestClassifyActivityNoTweetsIsDormant(t *testing.T) {
	now := time.Now()
	score := classifyActivity(snapshotFor("1"), nil, now)
	assert.Equal(t, model.ActivityDormant, score.ActivityStatus)
	assert.Nil(t, score.DaysSinceLastTweet)
	assert.Nil(t, score.LastTweetDate)
}

func TestClassifyActivityBoundaries(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		tweets []xapi.Tweet
		want   string
	}{
		{
			name: "recent and prolific is active",
			tweets: []xapi.Tweet{
				tweetAgedDays(1, now), tweetAgedDays(2, now), tweetAgedDays(3, now),
				tweetAgedDays(4, now), tweetAgedDays(5, now),
			},
			want: model.ActivityActive,
		},
		{
			name:   "recent but quiet is semi inactive",
			tweets: []xapi.Tweet{tweetAgedDays(1, now), tweetAgedDays(2, now)},
			want:   model.ActivitySemiInactive,
		},
		{
			name: "exactly 30 days and prolific is active",
			tweets: []xapi.Tweet{
				tweetAgedExactly(30, now), tweetAgedExactly(30, now), tweetAgedExactly(30, now),
				tweetAgedExactly(30, now), tweetAgedExactly(30, now),
			},
			want: model.ActivityActive,
		},
		{
			name:   "exactly 30 days but quiet is semi inactive",
			tweets: []xapi.Tweet{tweetAgedExactly(30, now)},
			want:   model.ActivitySemiInactive,
		},
		{
			name:   "31 days is semi inactive",
			tweets: []xapi.Tweet{tweetAgedExactly(31, now)},
			want:   model.ActivitySemiInactive,
		},
		{
			name:   "45 days is semi inactive",
			tweets: []xapi.Tweet{tweetAgedDays(45, now)},
			want:   model.ActivitySemiInactive,
		},
		{
			name:   "exactly 60 days is semi inactive",
			tweets: []xapi.Tweet{tweetAgedExactly(60, now)},
			want:   model.ActivitySemiInactive,
		},
		{
			name:   "61 days is inactive",
			tweets: []xapi.Tweet{tweetAgedDays(61, now)},
			want:   model.ActivityInactive,
		},
		{
			name:   "exactly 120 days is still inactive",
			tweets: []xapi.Tweet{tweetAgedExactly(120, now)},
			want:   model.ActivityInactive,
		},
		{
			name:   "121 days is dormant",
			tweets: []xapi.Tweet{tweetAgedDays(121, now)},
			want:   model.ActivityDormant,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := classifyActivity(snapshotFor("1"), tc.tweets, now)
			assert.Equal(t, tc.want, score.ActivityStatus)
		})
	}
}

func TestClassifyActivityCounts(t *testing.T) {
	now := time.Now()
	tweets := []xapi.Tweet{
		tweetAgedDays(5, now),
		tweetAgedDays(40, now),
		tweetAgedDays(80, now),
		tweetAgedDays(200, now),
	}

	score := classifyActivity(snapshotFor("1"), tweets, now)
	assert.Equal(t, 1, score.TweetCount30Days)
	assert.Equal(t, 3, score.TweetCount90Days)
	require.NotNil(t, score.DaysSinceLastTweet)
	assert.Equal(t, 5, *score.DaysSinceLastTweet)
	require.NotNil(t, score.LastTweetDate)
}

func TestAnalyzeSkipsFailedFollowers(t *testing.T) {
	userRepo := &fakeUserRepo{}
	accountRepo := &fakeXAccountRepo{}
	followerRepo := &fakeFollowerSnapshotRepo{}
	scoreRepo := &fakeInactivityScoreRepo{}
	now := time.Now()

	client := &fakeXClient{
		tweetsFn: func(_ context.Context, xUserID, _ string, _ int) (*xapi.TweetPage, error) {
			if xUserID == "2" {
				return nil, errors.New("suspended")
			}
			return &xapi.TweetPage{Data: []xapi.Tweet{tweetAgedDays(3, now)}}, nil
		},
	}
	xauthSvc := NewXAuthService(userRepo, accountRepo, client)
	svc := NewInactivityService(followerRepo, scoreRepo, xauthSvc, client)

	user := newTestUser(t, userRepo, "bob@example.com", "bob")
	account := newTestAccount(t, accountRepo, user, "42", "alice")

	ctx := context.Background()
	require.NoError(t, followerRepo.InsertBatch(ctx, []*model.FollowerSnapshot{
		{XAccountID: account.ID, FollowerXUserID: "1", SnapshotDate: now},
		{XAccountID: account.ID, FollowerXUserID: "2", SnapshotDate: now},
		{XAccountID: account.ID, FollowerXUserID: "3", SnapshotDate: now},
		// 同一粉丝的旧快照不会被重复分析
		{XAccountID: account.ID, FollowerXUserID: "1", SnapshotDate: now.Add(-time.Hour)},
	}))

	require.NoError(t, svc.Analyze(ctx, account))

	scores, err := scoreRepo.Find(ctx, account.ID, "")
	require.NoError(t, err)
	assert.Len(t, scores, 2)
	for _, score := range scores {
		assert.NotEqual(t, "2", score.FollowerXUserID)
	}
}
