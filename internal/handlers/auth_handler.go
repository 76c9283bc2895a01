package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/oporajita/reformtrack/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginUser(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
			return
		}

		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
			return
		}

		result, err := as.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// VerifyToken re-fetches the profile for the id the auth middleware extracted
// from the bearer token.
func VerifyToken(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		profile, err := as.VerifyUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// LogoutUser is stateless: the token stays valid until its natural expiry.
// A revocation denylist would hook in here.
func LogoutUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
