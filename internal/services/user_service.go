package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oporajita/reformtrack/internal/helpers"
	"github.com/oporajita/reformtrack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
}

func NewUserService(userRepo models.UserRepo, jwtSecret string) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// RegisteredUser is the trimmed profile returned right after signup.
type RegisteredUser struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	NID   string             `json:"nid"`
	Token string             `json:"token"`
}

// Register runs the signup validation gate, rejects duplicate email or NID
// (email checked first), then creates the user and issues a token. A non-empty
// field→message map means the gate failed and nothing was persisted.
func (us *UserService) Register(ctx context.Context, req *models.SignupRequest) (*RegisteredUser, map[string]string, error) {
	if fieldErrors := req.ValidateSignup(); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	if _, err := us.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, nil, models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, nil, fmt.Errorf("registration failed: %v", err)
	}

	if _, err := us.userRepo.FindUserByNID(ctx, req.NID); err == nil {
		return nil, nil, models.ErrDuplicateNID
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, nil, fmt.Errorf("registration failed: %v", err)
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		NID:         req.NID,
		Phone:       req.Phone,
		DateOfBirth: req.ParsedDateOfBirth(),
		Gender:      req.Gender,
		Division:    req.Division,
		District:    req.District,
		Address:     req.Address,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, nil, fmt.Errorf("registration failed: %v", err)
	}

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("registration failed: %v", err)
	}

	token, err := helpers.GenerateToken(created.ID.Hex(), us.jwtSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("registration failed: %v", err)
	}

	return &RegisteredUser{
		ID:    created.ID,
		Name:  created.Name,
		Email: created.Email,
		NID:   created.NID,
		Token: token,
	}, nil, nil
}

// VerifyExists reports whether a user with the given email or NID is already
// registered, and which identifier matched. Email is checked first.
func (us *UserService) VerifyExists(ctx context.Context, email, nid string) (bool, string, error) {
	if email != "" {
		_, err := us.userRepo.FindUserByEmail(ctx, email)
		if err == nil {
			return true, "email", nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return false, "", fmt.Errorf("verification failed: %v", err)
		}
	}

	if nid != "" {
		_, err := us.userRepo.FindUserByNID(ctx, nid)
		if err == nil {
			return true, "nid", nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return false, "", fmt.Errorf("verification failed: %v", err)
		}
	}

	return false, "", nil
}
