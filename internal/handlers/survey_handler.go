package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/oporajita/reformtrack/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetSurveys(ss *services.SurveyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		surveys, err := ss.ListSurveys(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, surveys)
	}
}

func GetSurveyByID(ss *services.SurveyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid survey id"})
			return
		}

		survey, err := ss.GetSurveyByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Survey not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, survey)
	}
}

func CreateSurvey(ss *services.SurveyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var survey models.Survey
		if err := c.ShouldBindJSON(&survey); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		created, err := ss.CreateSurvey(c.Request.Context(), &survey)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

func DeleteSurvey(ss *services.SurveyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid survey id"})
			return
		}

		if err := ss.DeleteSurvey(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Survey not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Survey deleted successfully"})
	}
}

func SubmitSurveyResponse(ss *services.SurveyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid survey id"})
			return
		}

		var response models.SurveyResponse
		if err := c.ShouldBindJSON(&response); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := ss.SubmitResponse(c.Request.Context(), id, &response); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Survey not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Response recorded"})
	}
}

// GetSurveySummary computes the aggregate view the summary page renders.
func GetSurveySummary(ss *services.SurveyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid survey id"})
			return
		}

		summary, err := ss.Summarize(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Survey not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}
