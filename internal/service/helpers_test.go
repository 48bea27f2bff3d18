package service

import (
	"Birdseye/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, repo *fakeUserRepo, email, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:    email,
		Password: "hashed",
		Username: username,
		Role:     model.RoleUser,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func newTestAccount(t *testing.T, repo *fakeXAccountRepo, user *model.User, xUserID, xUsername string) *model.XAccount {
	t.Helper()
	future := time.Now().Add(time.Hour)
	account := &model.XAccount{
		UserID:         user.ID,
		XUserID:        xUserID,
		XUsername:      xUsername,
		AccessToken:    "access",
		RefreshToken:   "refresh",
		TokenExpiresAt: &future,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}
