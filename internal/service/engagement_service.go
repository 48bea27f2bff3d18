package service

import (
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/consts"
	"Birdseye/internal/pkg/xapi"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

type EngagementService interface {
	Analyze(ctx context.Context, account *model.XAccount) error
}

type EngagementServiceImpl struct {
	followerRepo repository.FollowerSnapshotRepo
	statRepo     repository.EngagementStatRepo
	xauthService XAuthService
	client       xapi.Client
}

func NewEngagementService(
	followerRepo repository.FollowerSnapshotRepo,
	statRepo repository.EngagementStatRepo,
	xauthService XAuthService,
	client xapi.Client,
) EngagementService {
	return &EngagementServiceImpl{
		followerRepo: followerRepo,
		statRepo:     statRepo,
		xauthService: xauthService,
		client:       client,
	}
}

// Analyze 按最近快照样本统计每个粉丝的互动量并分层
// 失败的粉丝跳过，整体批次不中断
func (s *EngagementServiceImpl) Analyze(ctx context.Context, account *model.XAccount) error {
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
			log.Warn("engagement: tweets fetch failed, skipping",
				"follower_x_user_id", follower.FollowerXUserID, "err", err)
			continue
		}

		stat := scoreEngagement(follower, page.Data, account.XUsername, now)
		if err := s.statRepo.Upsert(ctx, stat); err != nil {
			return err
		}
		analyzed++
	}

	log.Info("engagement: analysis finished", "x_user_id", account.XUserID, "analyzed", analyzed)
	return nil
}

// scoreEngagement 评分 = 点赞 + 2*转推 + 3*回复 + 5*提及
// 分层阈值：>=100 high_value，>=40 engaged，>=10 passive，其余 ghost
func scoreEngagement(follower *model.FollowerSnapshot, tweets []xapi.Tweet, ownerUsername string, now time.Time) *model.EngagementStat {
	likes := 0
	retweets := 0
	replies := 0
	mentions := 0
	handle := "@" + strings.ToLower(ownerUsername)

	for _, tweet := range tweets {
		likes += tweet.PublicMetrics.LikeCount
		retweets += tweet.PublicMetrics.RetweetCount
		replies += tweet.PublicMetrics.ReplyCount
		if ownerUsername != "" && strings.Contains(strings.ToLower(tweet.Text), handle) {
			mentions++
		}
	}

	score := likes + 2*retweets + 3*replies + 5*mentions

	var tier string
	switch {
	case score >= 100:
		tier = model.TierHighValue
	case score >= 40:
		tier = model.TierEngaged
	case score >= 10:
		tier = model.TierPassive
	default:
		tier = model.TierGhost
	}

	return &model.EngagementStat{
		XAccountID:       follower.XAccountID,
		FollowerXUserID:  follower.FollowerXUserID,
		EngagementScore:  score,
		EngagementTier:   tier,
		LikesReceived:    likes,
		RetweetsReceived: retweets,
		RepliesReceived:  replies,
		MentionsCount:    mentions,
		CalculatedAt:     now,
	}
}
