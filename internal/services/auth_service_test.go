package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/oporajita/reformtrack/internal/helpers"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedUser(t *testing.T, repo *fakeUserRepo) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Jane Citizen",
		Email:    "jane@example.com",
		NID:      "1234567890",
		Phone:    "01712345678",
		Gender:   "female",
		Division: "Khulna",
		District: "Khulna",
		Address:  "Some address here",
	}
	require.NoError(t, user.SetPassword("Str0ng!Pass"))
	_, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestLoginIssuesTokenForStoredUser(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo)
	as := NewAuthService(repo, testSecret)

	result, err := as.Login(context.Background(), "jane@example.com", "Str0ng!Pass")
	require.NoError(t, err)

	claims, err := helpers.ParseToken(result.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "jane@example.com", result.Email)
}

func TestLoginPayloadNeverContainsPasswordHash(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo)
	as := NewAuthService(repo, testSecret)

	result, err := as.Login(context.Background(), "jane@example.com", "Str0ng!Pass")
	require.NoError(t, err)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.Password)
}

// Unknown email and wrong password must be indistinguishable to the client.
func TestLoginFailuresShareOneError(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo)
	as := NewAuthService(repo, testSecret)

	_, errUnknown := as.Login(context.Background(), "nobody@example.com", "Str0ng!Pass")
	_, errWrongPw := as.Login(context.Background(), "jane@example.com", "bad-password")

	assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, models.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestVerifyUserReturnsProfile(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo)
	as := NewAuthService(repo, testSecret)

	profile, err := as.VerifyUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestVerifyUserGoneReturnsNotFound(t *testing.T) {
	repo := &fakeUserRepo{}
	as := NewAuthService(repo, testSecret)

	_, err := as.VerifyUser(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = as.VerifyUser(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
