package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/oporajita/reformtrack/internal/services"
)

func RegisterUser(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		registered, fieldErrors, err := us.Register(c.Request.Context(), &req)
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, models.ValidationErrorsResponse(fieldErrors))
			return
		}
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDuplicateEmail):
				c.JSON(http.StatusBadRequest, models.MessageResponse("A user with this email already exists"))
			case errors.Is(err, models.ErrDuplicateNID):
				c.JSON(http.StatusBadRequest, models.MessageResponse("A user with this National ID already exists"))
			default:
				c.JSON(http.StatusInternalServerError, models.MessageResponse("Server error during registration"))
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(registered, "User registered successfully. Please verify your email."))
	}
}

type verifyExistsRequest struct {
	Email string `json:"email"`
	NID   string `json:"nid"`
}

// VerifyUserExists is the pre-submission duplicate probe.
func VerifyUserExists(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyExistsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.MessageResponse("Please provide either email or National ID"))
			return
		}

		if req.Email == "" && req.NID == "" {
			c.JSON(http.StatusBadRequest, models.MessageResponse("Please provide either email or National ID"))
			return
		}

		exists, field, err := us.VerifyExists(c.Request.Context(), req.Email, req.NID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.MessageResponse("Server error during verification"))
			return
		}

		if exists {
			c.JSON(http.StatusOK, gin.H{"success": true, "exists": true, "field": field})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "exists": false})
	}
}
