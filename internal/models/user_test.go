package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBeforeCreateNormalizes(t *testing.T) {
	u := User{
		Name:  "  Rahim Uddin ",
		Email: "Rahim@Example.COM",
		NID:   " 1234567890 ",
	}
	u.BeforeCreate()

	assert.Equal(t, "rahim@example.com", u.Email)
	assert.Equal(t, "1234567890", u.NID)
	assert.Equal(t, "Rahim Uddin", u.Name)
	assert.Equal(t, DefaultProfileImage, u.ProfileImage)
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.IsVerified)
}

func TestUserPasswordHashAndMatch(t *testing.T) {
	u := User{}
	require.NoError(t, u.SetPassword("Str0ng!Pass"))

	assert.NotEqual(t, "Str0ng!Pass", u.Password)
	assert.True(t, u.MatchPassword("Str0ng!Pass"))
	assert.False(t, u.MatchPassword("wrong-password"))
}

// The password hash must never serialize to clients.
func TestUserJSONOmitsPassword(t *testing.T) {
	u := User{Name: "Jane", Email: "jane@example.com"}
	require.NoError(t, u.SetPassword("Str0ng!Pass"))

	raw, err := json.Marshal(&u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), u.Password)
	assert.NotContains(t, string(raw), "password")
}

func TestUserProfileExcludesSensitiveFields(t *testing.T) {
	u := User{Name: "Jane", Email: "jane@example.com", NID: "1234567890"}
	require.NoError(t, u.SetPassword("Str0ng!Pass"))

	p := u.Profile()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), u.Password)
	assert.Contains(t, string(raw), "jane@example.com")
}
