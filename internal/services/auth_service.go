package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oporajita/reformtrack/internal/helpers"
	"github.com/oporajita/reformtrack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService struct {
	userRepo  models.UserRepo
	jwtSecret string
}

func NewAuthService(userRepo models.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// LoginResult is the login payload: the stored profile plus a fresh token.
type LoginResult struct {
	models.UserProfile
	Token string `json:"token"`
}

// Login authenticates by email and password. Unknown email and wrong password
// both come back as ErrInvalidCredentials so the response never reveals which
// check failed.
func (as *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := as.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login failed: %v", err)
	}

	if !user.MatchPassword(password) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := helpers.GenerateToken(user.ID.Hex(), as.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("login failed: %v", err)
	}

	return &LoginResult{
		UserProfile: user.Profile(),
		Token:       token,
	}, nil
}

// VerifyUser re-fetches the profile for a token that already passed signature
// and expiry checks. The user may have been removed since the token was issued.
func (as *AuthService) VerifyUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	user, err := as.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}
