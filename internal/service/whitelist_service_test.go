package service

import (
	"Birdseye/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWhitelistFixture(t *testing.T) (WhitelistService, string) {
	t.Helper()
	userRepo := &fakeUserRepo{}
	accountRepo := &fakeXAccountRepo{}
	svc := NewWhitelistService(accountRepo, &fakeWhitelistRepo{})

	user := newTestUser(t, userRepo, "bob@example.com", "bob")
	newTestAccount(t, accountRepo, user, "42", "alice")
	return svc, user.ID.Hex()
}

func TestWhitelistAddAndList(t *testing.T) {
	svc, userID := newWhitelistFixture(t)
	ctx := context.Background()

	entry, err := svc.Add(ctx, userID, &dto.AddWhitelistDTO{XUserID: "9", Username: "keeper", Reason: "friend"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keeper", entries[0].Username)
}

func TestWhitelistRejectsDuplicates(t *testing.T) {
	svc, userID := newWhitelistFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, &dto.AddWhitelistDTO{XUserID: "9", Username: "keeper"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, userID, &dto.AddWhitelistDTO{XUserID: "9", Username: "keeper"})
	assert.ErrorIs(t, err, ErrAlreadyWhitelisted)
}

func TestWhitelistRemove(t *testing.T) {
	svc, userID := newWhitelistFixture(t)
	ctx := context.Background()

	entry, err := svc.Add(ctx, userID, &dto.AddWhitelistDTO{XUserID: "9", Username: "keeper"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, userID, entry.ID))

	entries, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 再删一次或乱传 ID 都是 404
	assert.ErrorIs(t, svc.Remove(ctx, userID, entry.ID), ErrWhitelistNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, userID, "junk"), ErrWhitelistNotFound)
}

func TestWhitelistRequiresConnection(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := NewWhitelistService(&fakeXAccountRepo{}, &fakeWhitelistRepo{})
	user := newTestUser(t, userRepo, "carol@example.com", "carol")

	_, err := svc.List(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, ErrXAccountNotConnected)
}
