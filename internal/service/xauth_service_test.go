package service

import (
	"Birdseye/internal/pkg/security"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newXAuthFixture(client *fakeXClient) (XAuthService, *fakeUserRepo, *fakeXAccountRepo) {
	userRepo := &fakeUserRepo{}
	accountRepo := &fakeXAccountRepo{}
	return NewXAuthService(userRepo, accountRepo, client), userRepo, accountRepo
}

func TestAuthorizeURLCarriesSignedState(t *testing.T) {
	var gotState, gotChallenge string
	client := &fakeXClient{
		authorizeURLFn: func(state, codeChallenge string) string {
			gotState = state
			gotChallenge = codeChallenge
			return "https://example.com/authorize"
		},
	}
	svc, _, _ := newXAuthFixture(client)

	result, err := svc.GetAuthorizeURL(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/authorize", result.AuthURL)
	require.NotEmpty(t, gotChallenge)

	claims, err := security.ValidateStateToken(gotState)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.CodeVerifier)
	assert.Equal(t, security.CodeChallenge(claims.CodeVerifier), gotChallenge)
	assert.Empty(t, claims.UserID)
}

func TestCallbackRejectsBadState(t *testing.T) {
	svc, _, _ := newXAuthFixture(&fakeXClient{})

	_, err := svc.HandleCallback(context.Background(), "code", "not-a-state-token")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCallbackProvisionsUserAndAccountOnce(t *testing.T) {
	client := &fakeXClient{}
	svc, userRepo, accountRepo := newXAuthFixture(client)
	ctx := context.Background()

	state, err := security.GenerateStateToken("verifier", "")
	require.NoError(t, err)

	// 首次回调：自动建号 + 建绑定
	token, err := svc.HandleCallback(ctx, "code", state)
	require.NoError(t, err)
	require.Len(t, userRepo.users, 1)
	require.Len(t, accountRepo.accounts, 1)

	user := userRepo.users[0]
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@x-analytics.app", user.Email)
	require.NotNil(t, user.XUserID)
	assert.Equal(t, "42", *user.XUserID)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)

	// 二次回调：同一 X 身份不再建号，令牌被覆盖
	accountRepo.accounts[0].AccessToken = "stale"
	state2, err := security.GenerateStateToken("verifier", "")
	require.NoError(t, err)
	_, err = svc.HandleCallback(ctx, "code", state2)
	require.NoError(t, err)
	assert.Len(t, userRepo.users, 1)
	assert.Len(t, accountRepo.accounts, 1)
	assert.Equal(t, "access", accountRepo.accounts[0].AccessToken)
}

func TestCallbackLinksToStateUser(t *testing.T) {
	client := &fakeXClient{}
	svc, userRepo, accountRepo := newXAuthFixture(client)
	ctx := context.Background()

	existing := newTestUser(t, userRepo, "bob@example.com", "bob")

	state, err := security.GenerateStateToken("verifier", existing.ID.Hex())
	require.NoError(t, err)

	_, err = svc.HandleCallback(ctx, "code", state)
	require.NoError(t, err)

	// 绑定到 state 里携带的用户，而不是新建
	require.Len(t, userRepo.users, 1)
	require.Len(t, accountRepo.accounts, 1)
	assert.Equal(t, existing.ID, accountRepo.accounts[0].UserID)
	require.NotNil(t, existing.XUserID)
	assert.Equal(t, "42", *existing.XUserID)
}

func TestStatusAndDisconnect(t *testing.T) {
	client := &fakeXClient{}
	svc, userRepo, _ := newXAuthFixture(client)
	ctx := context.Background()

	user := newTestUser(t, userRepo, "bob@example.com", "bob")

	status, err := svc.GetStatus(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.False(t, status.Connected)

	state, err := security.GenerateStateToken("verifier", user.ID.Hex())
	require.NoError(t, err)
	_, err = svc.HandleCallback(ctx, "code", state)
	require.NoError(t, err)

	status, err = svc.GetStatus(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.True(t, status.Connected)
	require.NotNil(t, status.Account)
	assert.Equal(t, "alice", status.Account.XUsername)

	require.NoError(t, svc.Disconnect(ctx, user.ID.Hex()))
	assert.ErrorIs(t, svc.Disconnect(ctx, user.ID.Hex()), ErrXAccountNotConnected)
}

func TestEnsureFreshTokenRefreshesExpired(t *testing.T) {
	client := &fakeXClient{}
	svc, userRepo, accountRepo := newXAuthFixture(client)
	ctx := context.Background()

	user := newTestUser(t, userRepo, "bob@example.com", "bob")
	expired := time.Now().Add(-time.Minute)
	account := newTestAccount(t, accountRepo, user, "42", "alice")
	account.AccessToken = "stale"
	account.RefreshToken = "refresh"
	account.TokenExpiresAt = &expired

	got, err := svc.EnsureFreshToken(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "refreshed-access", got.AccessToken)
	assert.Equal(t, "refreshed-refresh", got.RefreshToken)
	assert.True(t, got.TokenExpiresAt.After(time.Now()))

	// 未过期不触发刷新
	got2, err := svc.EnsureFreshToken(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}
