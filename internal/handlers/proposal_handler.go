package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/oporajita/reformtrack/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetProposals(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		proposals, err := ps.ListProposals(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, proposals)
	}
}

func GetAcceptedProposals(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		proposals, err := ps.ListAcceptedProposals(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, proposals)
	}
}

// GetPublicProposals serves the unauthenticated home-page listing.
func GetPublicProposals(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		proposals, err := ps.PublicProposals(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, proposals)
	}
}

func GetProposalByID(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid proposal id"})
			return
		}

		proposal, err := ps.GetProposalByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Proposal not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, proposal)
	}
}

func CreateProposal(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var proposal models.Proposal
		if err := c.ShouldBindJSON(&proposal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		created, err := ps.CreateProposal(c.Request.Context(), &proposal)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

func UpdateProposal(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid proposal id"})
			return
		}

		var update models.ProposalUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		updated, err := ps.UpdateProposal(c.Request.Context(), id, &update)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Proposal not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteProposal(ps *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid proposal id"})
			return
		}

		if err := ps.DeleteProposal(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Proposal not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Proposal deleted successfully"})
	}
}
