package service

import (
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/consts"
	"Birdseye/internal/pkg/redis"
	"Birdseye/internal/pkg/xapi"
	"Birdseye/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const syncLockTTL = 15 * time.Minute

type SyncService interface {
	AccountForUser(ctx context.Context, userID string) (*model.XAccount, error)
	FullSync(ctx context.Context, account *model.XAccount) error
	SyncFollowers(ctx context.Context, account *model.XAccount) (int, error)
	SyncFollowing(ctx context.Context, account *model.XAccount) (int, error)
	CalculateGrowthStats(ctx context.Context, account *model.XAccount) error
	SyncAndAnalyze(ctx context.Context, account *model.XAccount)
}

type SyncServiceImpl struct {
	xAccountRepo      repository.XAccountRepo
	followerRepo      repository.FollowerSnapshotRepo
	followingRepo     repository.FollowingSnapshotRepo
	growthRepo        repository.GrowthStatRepo
	xauthService      XAuthService
	inactivityService InactivityService
	engagementService EngagementService
	client            xapi.Client
}

func NewSyncService(
	xAccountRepo repository.XAccountRepo,
	followerRepo repository.FollowerSnapshotRepo,
	followingRepo repository.FollowingSnapshotRepo,
	growthRepo repository.GrowthStatRepo,
	xauthService XAuthService,
	inactivityService InactivityService,
	engagementService EngagementService,
	client xapi.Client,
) SyncService {
	return &SyncServiceImpl{
		xAccountRepo:      xAccountRepo,
		followerRepo:      followerRepo,
		followingRepo:     followingRepo,
		growthRepo:        growthRepo,
		xauthService:      xauthService,
		inactivityService: inactivityService,
		engagementService: engagementService,
		client:            client,
	}
}

func (s *SyncServiceImpl) AccountForUser(ctx context.Context, userID string) (*model.XAccount, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	account, err := s.xAccountRepo.GetByUserID(ctx, oid)
	if err != nil {
		log.Error("sync: account lookup failed", "err", err)
		return nil, UnExpectedError
	}
	if account == nil {
		return nil, ErrXAccountNotConnected
	}
	return account, nil
}

// FullSync 粉丝、关注、增长三步，前两步失败中止，增长计算失败只记日志
func (s *SyncServiceImpl) FullSync(ctx context.Context, account *model.XAccount) error {
	if _, err := s.SyncFollowers(ctx, account); err != nil {
		return err
	}
	if _, err := s.SyncFollowing(ctx, account); err != nil {
		return err
	}
	if err := s.CalculateGrowthStats(ctx, account); err != nil {
		log.Error("sync: growth stats failed", "x_user_id", account.XUserID, "err", err)
	}
	return nil
}

// SyncFollowers 翻页拉全量粉丝，同一批共用一个 snapshotDate，结束后覆盖缓存计数
func (s *SyncServiceImpl) SyncFollowers(ctx context.Context, account *model.XAccount) (int, error) {
	account, err := s.xauthService.EnsureFreshToken(ctx, account)
	if err != nil {
		return 0, err
	}

	snapshotDate := time.Now()
	snapshots := make([]*model.FollowerSnapshot, 0)
	next := ""
	for {
		page, err := s.client.GetFollowers(ctx, account.XUserID, account.AccessToken, next)
		if err != nil {
			return 0, err
		}
		for i := range page.Data {
			snapshots = append(snapshots, followerSnapshotFrom(account.ID, &page.Data[i], snapshotDate))
		}
		if page.Meta.NextToken == "" {
			break
		}
		next = page.Meta.NextToken
	}

	if err := s.followerRepo.InsertBatch(ctx, snapshots); err != nil {
		return 0, err
	}

	account.FollowersCount = len(snapshots)
	account.LastSyncedAt = &snapshotDate
	if err := s.xAccountRepo.Update(ctx, account); err != nil {
		return 0, err
	}

	log.Info("sync: followers stored", "x_user_id", account.XUserID, "count", len(snapshots))
	return len(snapshots), nil
}

// SyncFollowing 同 SyncFollowers，对象为关注列表
func (s *SyncServiceImpl) SyncFollowing(ctx context.Context, account *model.XAccount) (int, error) {
	account, err := s.xauthService.EnsureFreshToken(ctx, account)
	if err != nil {
		return 0, err
	}

	snapshotDate := time.Now()
	snapshots := make([]*model.FollowingSnapshot, 0)
	next := ""
	for {
		page, err := s.client.GetFollowing(ctx, account.XUserID, account.AccessToken, next)
		if err != nil {
			return 0, err
		}
		for i := range page.Data {
			snapshots = append(snapshots, followingSnapshotFrom(account.ID, &page.Data[i], snapshotDate))
		}
		if page.Meta.NextToken == "" {
			break
		}
		next = page.Meta.NextToken
	}

	if err := s.followingRepo.InsertBatch(ctx, snapshots); err != nil {
		return 0, err
	}

	account.FollowingCount = len(snapshots)
	account.LastSyncedAt = &snapshotDate
	if err := s.xAccountRepo.Update(ctx, account); err != nil {
		return 0, err
	}

	log.Info("sync: following stored", "x_user_id", account.XUserID, "count", len(snapshots))
	return len(snapshots), nil
}

// CalculateGrowthStats 自然日口径：今日快照对比昨日快照，差集计算增减
func (s *SyncServiceImpl) CalculateGrowthStats(ctx context.Context, account *model.XAccount) error {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	today, err := s.followerRepo.FindSince(ctx, account.ID, todayStart)
	if err != nil {
		return err
	}
	yesterday, err := s.followerRepo.FindBetween(ctx, account.ID, yesterdayStart, todayStart)
	if err != nil {
		return err
	}

	todayIDs := followerIDSet(today)
	yesterdayIDs := followerIDSet(yesterday)

	gained := 0
	for id := range todayIDs {
		if _, ok := yesterdayIDs[id]; !ok {
			gained++
		}
	}
	lost := 0
	for id := range yesterdayIDs {
		if _, ok := todayIDs[id]; !ok {
			lost++
		}
	}

	stat := &model.GrowthStat{
		XAccountID:        account.ID,
		Date:              todayStart,
		FollowersCount:    account.FollowersCount,
		FollowingCount:    account.FollowingCount,
		FollowersGained:   gained,
		FollowersLost:     lost,
		NetFollowerChange: gained - lost,
	}
	return s.growthRepo.Upsert(ctx, stat)
}

// SyncAndAnalyze 后台执行全量同步加活跃度/互动分析，账号级锁防止并发重入
// 锁被占用时本轮直接跳过
func (s *SyncServiceImpl) SyncAndAnalyze(ctx context.Context, account *model.XAccount) {
	lockKey := consts.AccountSyncLock + account.ID.Hex()
	holder := uuid.NewString()
	locked, err := redis.TryLock(ctx, lockKey, holder, syncLockTTL)
	if err != nil {
		log.Error("sync: lock acquire failed", "x_user_id", account.XUserID, "err", err)
		return
	}
	if !locked {
		log.Info("sync: already running, skipped", "x_user_id", account.XUserID)
		return
	}
	defer redis.UnLock(ctx, lockKey, holder)

	if err := s.FullSync(ctx, account); err != nil {
		log.Error("sync: full sync failed", "x_user_id", account.XUserID, "err", err)
		return
	}
	if err := s.inactivityService.Analyze(ctx, account); err != nil {
		log.Error("sync: inactivity analysis failed", "x_user_id", account.XUserID, "err", err)
	}
	if err := s.engagementService.Analyze(ctx, account); err != nil {
		log.Error("sync: engagement analysis failed", "x_user_id", account.XUserID, "err", err)
	}
}

func followerSnapshotFrom(accountID primitive.ObjectID, u *xapi.XUser, snapshotDate time.Time) *model.FollowerSnapshot {
	return &model.FollowerSnapshot{
		XAccountID:       accountID,
		FollowerXUserID:  u.ID,
		Username:         u.Username,
		DisplayName:      u.Name,
		ProfileImageURL:  u.ProfileImageURL,
		Bio:              u.Description,
		FollowersCount:   u.PublicMetrics.FollowersCount,
		FollowingCount:   u.PublicMetrics.FollowingCount,
		Location:         u.Location,
		AccountCreatedAt: u.CreatedAt,
		Verified:         u.Verified,
		SnapshotDate:     snapshotDate,
	}
}

func followingSnapshotFrom(accountID primitive.ObjectID, u *xapi.XUser, snapshotDate time.Time) *model.FollowingSnapshot {
	return &model.FollowingSnapshot{
		XAccountID:       accountID,
		FollowingXUserID: u.ID,
		Username:         u.Username,
		DisplayName:      u.Name,
		ProfileImageURL:  u.ProfileImageURL,
		Bio:              u.Description,
		FollowersCount:   u.PublicMetrics.FollowersCount,
		FollowingCount:   u.PublicMetrics.FollowingCount,
		Location:         u.Location,
		AccountCreatedAt: u.CreatedAt,
		Verified:         u.Verified,
		SnapshotDate:     snapshotDate,
	}
}

func followerIDSet(snapshots []*model.FollowerSnapshot) map[string]struct{} {
	ids := make(map[string]struct{}, len(snapshots))
	for _, snapshot := range snapshots {
		ids[snapshot.FollowerXUserID] = struct{}{}
	}
	return ids
}
