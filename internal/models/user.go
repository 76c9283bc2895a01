package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	UsersColName        = "users"
	DefaultProfileImage = "default-profile.jpg"
)

var Divisions = []string{"Dhaka", "Chittagong", "Rajshahi", "Khulna", "Barisal", "Sylhet", "Rangpur", "Mymensingh"}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	NID          string             `bson:"nid" json:"nid" validate:"required,bdnid"`
	Phone        string             `bson:"phone" json:"phone" validate:"required,bdphone"`
	DateOfBirth  time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender       string             `bson:"gender" json:"gender" validate:"required,oneof=male female other"`
	Division     string             `bson:"division" json:"division" validate:"required,oneof=Dhaka Chittagong Rajshahi Khulna Barisal Sylhet Rangpur Mymensingh"`
	District     string             `bson:"district" json:"district" validate:"required"`
	Address      string             `bson:"address" json:"address" validate:"required"`
	Password     string             `bson:"password" json:"-"`
	ProfileImage string             `bson:"profileImage" json:"profileImage"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// BeforeCreate normalizes the document the way the mongoose schema did:
// lowercased email, placeholder image, creation timestamp.
func (u *User) BeforeCreate() {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.NID = strings.TrimSpace(u.NID)
	u.Name = strings.TrimSpace(u.Name)
	if u.ProfileImage == "" {
		u.ProfileImage = DefaultProfileImage
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) MatchPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// UserProfile is the client-facing shape of a user record. The password hash
// never leaves the server.
type UserProfile struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	NID          string             `json:"nid"`
	Phone        string             `json:"phone"`
	DateOfBirth  time.Time          `json:"dateOfBirth"`
	Gender       string             `json:"gender"`
	Division     string             `json:"division"`
	District     string             `json:"district"`
	Address      string             `json:"address"`
	ProfileImage string             `json:"profileImage"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		NID:          u.NID,
		Phone:        u.Phone,
		DateOfBirth:  u.DateOfBirth,
		Gender:       u.Gender,
		Division:     u.Division,
		District:     u.District,
		Address:      u.Address,
		ProfileImage: u.ProfileImage,
	}
}
