package service

import (
	"Birdseye/internal/api/dto"
	"Birdseye/internal/model"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SortFollowersDesc = "followers_desc"
	SortFollowersAsc  = "followers_asc"
	SortNewest        = "newest"
	SortOldest        = "oldest"
)

// 最近一次同步的行定义为 24 小时窗口内的快照
const latestSnapshotWindow = 24 * time.Hour

type AnalyticsService interface {
	GetNonFollowers(ctx context.Context, userID, sortBy string) (*dto.NonFollowersDTO, error)
	GetEngagementSummary(ctx context.Context, userID, tier string) (*dto.EngagementSummaryDTO, error)
	GetGrowthSummary(ctx context.Context, userID string, days int) (*dto.GrowthSummaryDTO, error)
	GetDemographics(ctx context.Context, userID string) (*dto.DemographicsDTO, error)
	GetInactiveFollowers(ctx context.Context, userID, activityLevel string) (*dto.InactiveFollowersDTO, error)
}

type AnalyticsServiceImpl struct {
	xAccountRepo   repository.XAccountRepo
	followerRepo   repository.FollowerSnapshotRepo
	followingRepo  repository.FollowingSnapshotRepo
	growthRepo     repository.GrowthStatRepo
	engagementRepo repository.EngagementStatRepo
	inactivityRepo repository.InactivityScoreRepo
}

func NewAnalyticsService(
	xAccountRepo repository.XAccountRepo,
	followerRepo repository.FollowerSnapshotRepo,
	followingRepo repository.FollowingSnapshotRepo,
	growthRepo repository.GrowthStatRepo,
	engagementRepo repository.EngagementStatRepo,
	inactivityRepo repository.InactivityScoreRepo,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		xAccountRepo:   xAccountRepo,
		followerRepo:   followerRepo,
		followingRepo:  followingRepo,
		growthRepo:     growthRepo,
		engagementRepo: engagementRepo,
		inactivityRepo: inactivityRepo,
	}
}

// GetNonFollowers 最近一次同步里我关注但未回关的账号
func (s *AnalyticsServiceImpl) GetNonFollowers(ctx context.Context, userID, sortBy string) (*dto.NonFollowersDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-latestSnapshotWindow)
	following, err := s.followingRepo.FindSince(ctx, account.ID, since)
	if err != nil {
		log.Error("analytics: following fetch failed", "err", err)
		return nil, UnExpectedError
	}
	followers, err := s.followerRepo.FindSince(ctx, account.ID, since)
	if err != nil {
		log.Error("analytics: followers fetch failed", "err", err)
		return nil, UnExpectedError
	}

	followerIDs := make(map[string]struct{}, len(followers))
	for _, f := range followers {
		followerIDs[f.FollowerXUserID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(following))
	nonFollowers := make([]*model.FollowingSnapshot, 0)
	for _, f := range following {
		if _, ok := followerIDs[f.FollowingXUserID]; ok {
			continue
		}
		if _, ok := seen[f.FollowingXUserID]; ok {
			continue
		}
		seen[f.FollowingXUserID] = struct{}{}
		nonFollowers = append(nonFollowers, f)
	}

	if sortBy == "" {
		sortBy = SortFollowersDesc
	}
	sortNonFollowers(nonFollowers, sortBy)

	users := make([]*dto.FollowerDTO, 0, len(nonFollowers))
	for _, f := range nonFollowers {
		row := &dto.FollowerDTO{}
		if err := copier.Copy(row, f); err != nil {
			return nil, err
		}
		row.XUserID = f.FollowingXUserID
		users = append(users, row)
	}

	return &dto.NonFollowersDTO{Total: len(users), Sort: sortBy, Users: users}, nil
}

// sortNonFollowers 稳定排序，followedAt 缺失的行在时间序中归为一组保持原序
func sortNonFollowers(rows []*model.FollowingSnapshot, sortBy string) {
	switch sortBy {
	case SortFollowersAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].FollowersCount < rows[j].FollowersCount
		})
	case SortNewest:
		sort.SliceStable(rows, func(i, j int) bool {
			return followedAtOrZero(rows[i]).After(followedAtOrZero(rows[j]))
		})
	case SortOldest:
		sort.SliceStable(rows, func(i, j int) bool {
			return followedAtOrZero(rows[i]).Before(followedAtOrZero(rows[j]))
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].FollowersCount > rows[j].FollowersCount
		})
	}
}

func followedAtOrZero(row *model.FollowingSnapshot) time.Time {
	if row.FollowedAt == nil {
		return time.Time{}
	}
	return *row.FollowedAt
}

// GetEngagementSummary 分层计数基于全量，行列表按 tier 过滤
func (s *AnalyticsServiceImpl) GetEngagementSummary(ctx context.Context, userID, tier string) (*dto.EngagementSummaryDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.engagementRepo.Find(ctx, account.ID, "")
	if err != nil {
		log.Error("analytics: engagement fetch failed", "err", err)
		return nil, UnExpectedError
	}

	tierCounts := map[string]int{
		model.TierHighValue: 0,
		model.TierEngaged:   0,
		model.TierPassive:   0,
		model.TierGhost:     0,
	}
	rows := make([]*dto.EngagementRowDTO, 0, len(stats))
	for _, stat := range stats {
		tierCounts[stat.EngagementTier]++
		if tier != "" && stat.EngagementTier != tier {
			continue
		}
		row := &dto.EngagementRowDTO{}
		if err := copier.Copy(row, stat); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &dto.EngagementSummaryDTO{
		Total:     len(stats),
		TierCount: tierCounts,
		Rows:      rows,
	}, nil
}

func (s *AnalyticsServiceImpl) GetGrowthSummary(ctx context.Context, userID string, days int) (*dto.GrowthSummaryDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -days)
	stats, err := s.growthRepo.FindSince(ctx, account.ID, since)
	if err != nil {
		log.Error("analytics: growth fetch failed", "err", err)
		return nil, UnExpectedError
	}

	summary := &dto.GrowthSummaryDTO{
		Days:  days,
		Daily: make([]*dto.GrowthDayDTO, 0, len(stats)),
	}
	for _, stat := range stats {
		day := &dto.GrowthDayDTO{}
		if err := copier.Copy(day, stat); err != nil {
			return nil, err
		}
		summary.Daily = append(summary.Daily, day)
		summary.TotalGained += stat.FollowersGained
		summary.TotalLost += stat.FollowersLost
		summary.NetChange += stat.NetFollowerChange
	}
	return summary, nil
}

// GetDemographics 最近一次同步的粉丝画像：top10 地区与认证比例
func (s *AnalyticsServiceImpl) GetDemographics(ctx context.Context, userID string) (*dto.DemographicsDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-latestSnapshotWindow)
	followers, err := s.followerRepo.FindSince(ctx, account.ID, since)
	if err != nil {
		log.Error("analytics: followers fetch failed", "err", err)
		return nil, UnExpectedError
	}

	seen := make(map[string]struct{}, len(followers))
	locations := make(map[string]int)
	result := &dto.DemographicsDTO{}
	for _, f := range followers {
		if _, ok := seen[f.FollowerXUserID]; ok {
			continue
		}
		seen[f.FollowerXUserID] = struct{}{}

		result.Total++
		if f.Verified {
			result.Verified++
		} else {
			result.Unverified++
		}
		if f.Location != "" {
			locations[f.Location]++
		}
	}

	top := make([]*dto.LocationCountDTO, 0, len(locations))
	for location, count := range locations {
		top = append(top, &dto.LocationCountDTO{Location: location, Count: count})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Location < top[j].Location
	})
	if len(top) > 10 {
		top = top[:10]
	}
	result.TopLocations = top

	return result, nil
}

func (s *AnalyticsServiceImpl) GetInactiveFollowers(ctx context.Context, userID, activityLevel string) (*dto.InactiveFollowersDTO, error) {
	account, err := s.accountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	scores, err := s.inactivityRepo.Find(ctx, account.ID, activityLevel)
	if err != nil {
		log.Error("analytics: inactivity fetch failed", "err", err)
		return nil, UnExpectedError
	}

	rows := make([]*dto.InactiveFollowerDTO, 0, len(scores))
	for _, score := range scores {
		row := &dto.InactiveFollowerDTO{}
		if err := copier.Copy(row, score); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return &dto.InactiveFollowersDTO{Total: len(rows), Rows: rows}, nil
}

func (s *AnalyticsServiceImpl) accountForUser(ctx context.Context, userID string) (*model.XAccount, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	account, err := s.xAccountRepo.GetByUserID(ctx, oid)
	if err != nil {
		log.Error("analytics: account lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if account == nil {
		return nil, ErrXAccountNotConnected
	}
	return account, nil
}
