package services

import (
	"context"
	"fmt"

	"github.com/oporajita/reformtrack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProposalService struct {
	proposalRepo models.ProposalRepo
}

func NewProposalService(proposalRepo models.ProposalRepo) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
	}
}

func (ps *ProposalService) CreateProposal(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error) {
	if err := models.Validate.Struct(proposal); err != nil {
		return nil, fmt.Errorf("invalid proposal data: %v", err)
	}

	return ps.proposalRepo.CreateProposal(ctx, proposal)
}

func (ps *ProposalService) ListProposals(ctx context.Context) ([]*models.Proposal, error) {
	return ps.proposalRepo.ListProposals(ctx)
}

func (ps *ProposalService) ListAcceptedProposals(ctx context.Context) ([]*models.Proposal, error) {
	return ps.proposalRepo.ListAcceptedProposals(ctx)
}

func (ps *ProposalService) GetProposalByID(ctx context.Context, id primitive.ObjectID) (*models.Proposal, error) {
	return ps.proposalRepo.GetProposalByID(ctx, id)
}

// UpdateProposal merges the provided fields into the stored document. The
// submitted progress value and the milestone completion flags are written as
// given; the server never reconciles one against the other.
func (ps *ProposalService) UpdateProposal(ctx context.Context, id primitive.ObjectID, update *models.ProposalUpdate) (*models.Proposal, error) {
	if err := models.Validate.Struct(update); err != nil {
		return nil, fmt.Errorf("invalid proposal data: %v", err)
	}

	return ps.proposalRepo.UpdateProposal(ctx, id, update)
}

func (ps *ProposalService) DeleteProposal(ctx context.Context, id primitive.ObjectID) error {
	return ps.proposalRepo.DeleteProposal(ctx, id)
}

// PublicProposals returns at most the six most recently submitted accepted
// proposals in the reduced home-page projection.
func (ps *ProposalService) PublicProposals(ctx context.Context) ([]models.PublicProposal, error) {
	proposals, err := ps.proposalRepo.ListRecentAcceptedProposals(ctx, models.PublicProposalLimit)
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicProposal, 0, len(proposals))
	for _, p := range proposals {
		public = append(public, p.PublicView())
	}

	return public, nil
}
