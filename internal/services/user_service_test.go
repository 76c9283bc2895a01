package services

import (
	"context"
	"testing"

	"github.com/oporajita/reformtrack/internal/helpers"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.BeforeCreate()
	stored := *user
	f.users = append(f.users, &stored)
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) FindUserByNID(ctx context.Context, nid string) (*models.User, error) {
	for _, u := range f.users {
		if u.NID == nid {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) EnsureUserIndexes(ctx context.Context) error {
	return nil
}

func signupRequestFixture() models.SignupRequest {
	return models.SignupRequest{
		Name:            "Rahim Uddin",
		Email:           "rahim@example.com",
		NID:             "1234567890",
		Phone:           "01712345678",
		DateOfBirth:     "1990-04-15",
		Gender:          "male",
		Division:        "Dhaka",
		District:        "Dhaka",
		Address:         "House 12, Road 5, Dhanmondi",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	}
}

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{}
	us := NewUserService(repo, testSecret)

	req := signupRequestFixture()
	registered, fieldErrors, err := us.Register(context.Background(), &req)
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	require.NotNil(t, registered)

	assert.Equal(t, "Rahim Uddin", registered.Name)
	assert.Equal(t, "rahim@example.com", registered.Email)
	assert.Equal(t, "1234567890", registered.NID)

	claims, err := helpers.ParseToken(registered.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "Str0ng!Pass", stored.Password)
	assert.True(t, stored.MatchPassword("Str0ng!Pass"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	us := NewUserService(repo, testSecret)

	first := signupRequestFixture()
	_, _, err := us.Register(context.Background(), &first)
	require.NoError(t, err)

	second := signupRequestFixture()
	second.NID = "9876543210"
	_, fieldErrors, err := us.Register(context.Background(), &second)
	assert.Empty(t, fieldErrors)
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	assert.Len(t, repo.users, 1)
}

func TestRegisterRejectsDuplicateNID(t *testing.T) {
	repo := &fakeUserRepo{}
	us := NewUserService(repo, testSecret)

	first := signupRequestFixture()
	_, _, err := us.Register(context.Background(), &first)
	require.NoError(t, err)

	second := signupRequestFixture()
	second.Email = "other@example.com"
	_, fieldErrors, err := us.Register(context.Background(), &second)
	assert.Empty(t, fieldErrors)
	assert.ErrorIs(t, err, models.ErrDuplicateNID)
	assert.Len(t, repo.users, 1)
}

func TestRegisterValidationGateBlocksPersistence(t *testing.T) {
	repo := &fakeUserRepo{}
	us := NewUserService(repo, testSecret)

	req := signupRequestFixture()
	req.Phone = "12345"
	registered, fieldErrors, err := us.Register(context.Background(), &req)
	require.NoError(t, err)
	assert.Nil(t, registered)
	assert.Contains(t, fieldErrors, "phone")
	assert.Empty(t, repo.users)
}

func TestVerifyExistsChecksEmailFirst(t *testing.T) {
	repo := &fakeUserRepo{}
	us := NewUserService(repo, testSecret)

	req := signupRequestFixture()
	_, _, err := us.Register(context.Background(), &req)
	require.NoError(t, err)

	exists, field, err := us.VerifyExists(context.Background(), "rahim@example.com", "1234567890")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "email", field)

	exists, field, err = us.VerifyExists(context.Background(), "", "1234567890")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "nid", field)

	exists, field, err = us.VerifyExists(context.Background(), "nobody@example.com", "0000000000")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, field)
}
