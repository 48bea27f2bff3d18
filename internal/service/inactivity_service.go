package service

import (
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/consts"
	"Birdseye/internal/pkg/xapi"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// 单个粉丝取样的推文条数 (X API 单次上限)
const recentTweetLimit = 100

type InactivityService interface {
	Analyze(ctx context.Context, account *model.XAccount) error
}

type InactivityServiceImpl struct {
	followerRepo repository.FollowerSnapshotRepo
	scoreRepo    repository.InactivityScoreRepo
	xauthService XAuthService
	client       xapi.Client
}

func NewInactivityService(
	followerRepo repository.FollowerSnapshotRepo,
	scoreRepo repository.InactivityScoreRepo,
	xauthService XAuthService,
	client xapi.Client,
) InactivityService {
	return &InactivityServiceImpl{
		followerRepo: followerRepo,
		scoreRepo:    scoreRepo,
		xauthService: xauthService,
		client:       client,
	}
}

// Analyze 取最近的快照样本逐个拉推文打分，单个粉丝失败跳过不中断
// 顺序执行，速率限制交给上游 API 的配额处理
func (s *InactivityServiceImpl) Analyze(ctx context.Context, account *model.XAccount) error {
	account, err := s.xauthService.EnsureFreshToken(ctx, account)
	if err != nil {
		return err
	}

	snapshots, err := s.followerRepo.FindRecent(ctx, account.ID, consts.InactivitySampleLimit)
	if err != nil {
		return err
	}

	now := time.Now()
	analyzed := 0
	for _, follower := range dedupeFollowers(snapshots) {
		page, err := s.client.GetUserTweets(ctx, follower.FollowerXUserID, account.AccessToken, recentTweetLimit)
		if err != nil {
			log.Warn("inactivity: tweets fetch failed, skipping",
				"follower_x_user_id", follower.FollowerXUserID, "err", err)
			continue
		}

		score := classifyActivity(follower, page.Data, now)
		if err := s.scoreRepo.Upsert(ctx, score); err != nil {
			return err
		}
		analyzed++
	}

	log.Info("inactivity: analysis finished", "x_user_id", account.XUserID, "analyzed", analyzed)
	return nil
}

// classifyActivity 无推文视为沉睡；30 天内发文且近 30 天不少于 5 条为活跃；
// 60/120 天为半不活跃/不活跃的边界，更久为沉睡
func classifyActivity(follower *model.FollowerSnapshot, tweets []xapi.Tweet, now time.Time) *model.InactivityScore {
	score := &model.InactivityScore{
		XAccountID:      follower.XAccountID,
		FollowerXUserID: follower.FollowerXUserID,
		CalculatedAt:    now,
	}

	if len(tweets) == 0 {
		score.ActivityStatus = model.ActivityDormant
		return score
	}

	lastTweet := tweets[0].CreatedAt
	for _, tweet := range tweets[1:] {
		if tweet.CreatedAt.After(lastTweet) {
			lastTweet = tweet.CreatedAt
		}
	}

	days := int(now.Sub(lastTweet).Hours() / 24)
	count30 := 0
	count90 := 0
	for _, tweet := range tweets {
		age := now.Sub(tweet.CreatedAt)
		if age <= 30*24*time.Hour {
			count30++
		}
		if age <= 90*24*time.Hour {
			count90++
		}
	}

	score.DaysSinceLastTweet = &days
	score.LastTweetDate = &lastTweet
	score.TweetCount30Days = count30
	score.TweetCount90Days = count90

	switch {
	case days <= 30 && count30 >= 5:
		score.ActivityStatus = model.ActivityActive
	case days <= 60:
		score.ActivityStatus = model.ActivitySemiInactive
	case days <= 120:
		score.ActivityStatus = model.ActivityInactive
	default:
		score.ActivityStatus = model.ActivityDormant
	}
	return score
}

// dedupeFollowers 近期样本跨多次同步会重复，保留最新一条
func dedupeFollowers(snapshots []*model.FollowerSnapshot) []*model.FollowerSnapshot {
	seen := make(map[string]struct{}, len(snapshots))
	unique := make([]*model.FollowerSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if _, ok := seen[snapshot.FollowerXUserID]; ok {
			continue
		}
		seen[snapshot.FollowerXUserID] = struct{}{}
		unique = append(unique, snapshot)
	}
	return unique
}
