package service

import (
	"Birdseye/internal/model"
	"Birdseye/internal/pkg/xapi"
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存仓储桩，行为对齐 mongo 实现：未命中返回 (nil, nil)

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByXUserID(_ context.Context, xUserID string) (*model.User, error) {
	for _, u := range f.users {
		if u.XUserID != nil && *u.XUserID == xUserID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return errors.New("user not found")
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountUsersByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeXAccountRepo struct {
	accounts []*model.XAccount
}

func (f *fakeXAccountRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*model.XAccount, error) {
	for _, a := range f.accounts {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeXAccountRepo) GetByXUserID(_ context.Context, xUserID string) (*model.XAccount, error) {
	for _, a := range f.accounts {
		if a.XUserID == xUserID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeXAccountRepo) Create(_ context.Context, account *model.XAccount) error {
	account.ID = primitive.NewObjectID()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeXAccountRepo) Update(_ context.Context, account *model.XAccount) error {
	for i, a := range f.accounts {
		if a.ID == account.ID {
			f.accounts[i] = account
			return nil
		}
	}
	return errors.New("account not found")
}

func (f *fakeXAccountRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, a := range f.accounts {
		if a.ID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeXAccountRepo) GetAll(_ context.Context) ([]*model.XAccount, error) {
	return f.accounts, nil
}

func (f *fakeXAccountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.accounts)), nil
}

type fakeFollowerSnapshotRepo struct {
	rows []*model.FollowerSnapshot
}

func (f *fakeFollowerSnapshotRepo) InsertBatch(_ context.Context, snapshots []*model.FollowerSnapshot) error {
	for _, s := range snapshots {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = time.Now()
		f.rows = append(f.rows, s)
	}
	return nil
}

func (f *fakeFollowerSnapshotRepo) FindSince(_ context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.FollowerSnapshot, error) {
	out := make([]*model.FollowerSnapshot, 0)
	for _, s := range f.rows {
		if s.XAccountID == accountID && !s.SnapshotDate.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeFollowerSnapshotRepo) FindBetween(_ context.Context, accountID primitive.ObjectID, from, to time.Time) ([]*model.FollowerSnapshot, error) {
	out := make([]*model.FollowerSnapshot, 0)
	for _, s := range f.rows {
		if s.XAccountID == accountID && !s.SnapshotDate.Before(from) && s.SnapshotDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeFollowerSnapshotRepo) FindRecent(_ context.Context, accountID primitive.ObjectID, limit int64) ([]*model.FollowerSnapshot, error) {
	out := make([]*model.FollowerSnapshot, 0)
	for _, s := range f.rows {
		if s.XAccountID == accountID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SnapshotDate.After(out[j].SnapshotDate)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeFollowingSnapshotRepo struct {
	rows []*model.FollowingSnapshot
}

func (f *fakeFollowingSnapshotRepo) InsertBatch(_ context.Context, snapshots []*model.FollowingSnapshot) error {
	for _, s := range snapshots {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = time.Now()
		f.rows = append(f.rows, s)
	}
	return nil
}

func (f *fakeFollowingSnapshotRepo) FindSince(_ context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.FollowingSnapshot, error) {
	out := make([]*model.FollowingSnapshot, 0)
	for _, s := range f.rows {
		if s.XAccountID == accountID && !s.SnapshotDate.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeGrowthStatRepo struct {
	rows []*model.GrowthStat
}

func (f *fakeGrowthStatRepo) Upsert(_ context.Context, stat *model.GrowthStat) error {
	for i, s := range f.rows {
		if s.XAccountID == stat.XAccountID && s.Date.Equal(stat.Date) {
			stat.ID = s.ID
			f.rows[i] = stat
			return nil
		}
	}
	stat.ID = primitive.NewObjectID()
	f.rows = append(f.rows, stat)
	return nil
}

func (f *fakeGrowthStatRepo) FindSince(_ context.Context, accountID primitive.ObjectID, since time.Time) ([]*model.GrowthStat, error) {
	out := make([]*model.GrowthStat, 0)
	for _, s := range f.rows {
		if s.XAccountID == accountID && !s.Date.Before(since) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakeEngagementStatRepo struct {
	rows []*model.EngagementStat
}

func (f *fakeEngagementStatRepo) Upsert(_ context.Context, stat *model.EngagementStat) error {
	for i, s := range f.rows {
		if s.XAccountID == stat.XAccountID && s.FollowerXUserID == stat.FollowerXUserID {
			stat.ID = s.ID
			f.rows[i] = stat
			return nil
		}
	}
	stat.ID = primitive.NewObjectID()
	f.rows = append(f.rows, stat)
	return nil
}

func (f *fakeEngagementStatRepo) Find(_ context.Context, accountID primitive.ObjectID, tier string) ([]*model.EngagementStat, error) {
	out := make([]*model.EngagementStat, 0)
	for _, s := range f.rows {
		if s.XAccountID != accountID {
			continue
		}
		if tier != "" && s.EngagementTier != tier {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EngagementScore > out[j].EngagementScore })
	return out, nil
}

type fakeInactivityScoreRepo struct {
	rows []*model.InactivityScore
}

func (f *fakeInactivityScoreRepo) Upsert(_ context.Context, score *model.InactivityScore) error {
	for i, s := range f.rows {
		if s.XAccountID == score.XAccountID && s.FollowerXUserID == score.FollowerXUserID {
			score.ID = s.ID
			f.rows[i] = score
			return nil
		}
	}
	score.ID = primitive.NewObjectID()
	f.rows = append(f.rows, score)
	return nil
}

func (f *fakeInactivityScoreRepo) Find(_ context.Context, accountID primitive.ObjectID, status string) ([]*model.InactivityScore, error) {
	out := make([]*model.InactivityScore, 0)
	for _, s := range f.rows {
		if s.XAccountID != accountID {
			continue
		}
		if status != "" && s.ActivityStatus != status {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := 0, 0
		if out[i].DaysSinceLastTweet != nil {
			di = *out[i].DaysSinceLastTweet
		}
		if out[j].DaysSinceLastTweet != nil {
			dj = *out[j].DaysSinceLastTweet
		}
		return di > dj
	})
	return out, nil
}

type fakeWhitelistRepo struct {
	rows []*model.WhitelistedAccount
}

func (f *fakeWhitelistRepo) Find(_ context.Context, accountID primitive.ObjectID) ([]*model.WhitelistedAccount, error) {
	out := make([]*model.WhitelistedAccount, 0)
	for _, e := range f.rows {
		if e.XAccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeWhitelistRepo) Get(_ context.Context, accountID primitive.ObjectID, xUserID string) (*model.WhitelistedAccount, error) {
	for _, e := range f.rows {
		if e.XAccountID == accountID && e.XUserID == xUserID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeWhitelistRepo) GetByID(_ context.Context, id, accountID primitive.ObjectID) (*model.WhitelistedAccount, error) {
	for _, e := range f.rows {
		if e.ID == id && e.XAccountID == accountID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeWhitelistRepo) Create(_ context.Context, entry *model.WhitelistedAccount) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	f.rows = append(f.rows, entry)
	return nil
}

func (f *fakeWhitelistRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, e := range f.rows {
		if e.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeXClient 按需覆写各方法的 X API 桩
type fakeXClient struct {
	authorizeURLFn func(state, codeChallenge string) string
	exchangeFn     func(ctx context.Context, code, codeVerifier string) (*xapi.TokenResponse, error)
	refreshFn      func(ctx context.Context, refreshToken string) (*xapi.TokenResponse, error)
	profileFn      func(ctx context.Context, accessToken string) (*xapi.XUser, error)
	followersFn    func(ctx context.Context, xUserID, accessToken, paginationToken string) (*xapi.UserPage, error)
	followingFn    func(ctx context.Context, xUserID, accessToken, paginationToken string) (*xapi.UserPage, error)
	tweetsFn       func(ctx context.Context, xUserID, accessToken string, maxResults int) (*xapi.TweetPage, error)
	unfollowFn     func(ctx context.Context, sourceXUserID, targetXUserID, accessToken string) error
}

func (f *fakeXClient) AuthorizeURL(state, codeChallenge string) string {
	if f.authorizeURLFn != nil {
		return f.authorizeURLFn(state, codeChallenge)
	}
	return "https://twitter.com/i/oauth2/authorize?state=" + state
}

func (f *fakeXClient) ExchangeCode(ctx context.Context, code, codeVerifier string) (*xapi.TokenResponse, error) {
	if f.exchangeFn != nil {
		return f.exchangeFn(ctx, code, codeVerifier)
	}
	return &xapi.TokenResponse{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 7200}, nil
}

func (f *fakeXClient) RefreshToken(ctx context.Context, refreshToken string) (*xapi.TokenResponse, error) {
	if f.refreshFn != nil {
		return f.refreshFn(ctx, refreshToken)
	}
	return &xapi.TokenResponse{AccessToken: "refreshed-access", RefreshToken: "refreshed-refresh", ExpiresIn: 7200}, nil
}

func (f *fakeXClient) GetUserProfile(ctx context.Context, accessToken string) (*xapi.XUser, error) {
	if f.profileFn != nil {
		return f.profileFn(ctx, accessToken)
	}
	return &xapi.XUser{ID: "42", Username: "alice", Name: "Alice"}, nil
}

func (f *fakeXClient) GetFollowers(ctx context.Context, xUserID, accessToken, paginationToken string) (*xapi.UserPage, error) {
	if f.followersFn != nil {
		return f.followersFn(ctx, xUserID, accessToken, paginationToken)
	}
	return &xapi.UserPage{}, nil
}

func (f *fakeXClient) GetFollowing(ctx context.Context, xUserID, accessToken, paginationToken string) (*xapi.UserPage, error) {
	if f.followingFn != nil {
		return f.followingFn(ctx, xUserID, accessToken, paginationToken)
	}
	return &xapi.UserPage{}, nil
}

func (f *fakeXClient) GetUserTweets(ctx context.Context, xUserID, accessToken string, maxResults int) (*xapi.TweetPage, error) {
	if f.tweetsFn != nil {
		return f.tweetsFn(ctx, xUserID, accessToken, maxResults)
	}
	return &xapi.TweetPage{}, nil
}

func (f *fakeXClient) UnfollowUser(ctx context.Context, sourceXUserID, targetXUserID, accessToken string) error {
	if f.unfollowFn != nil {
		return f.unfollowFn(ctx, sourceXUserID, targetXUserID, accessToken)
	}
	return nil
}
