package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalBeforeCreateDefaults(t *testing.T) {
	p := Proposal{
		Title:       "Road Safety",
		Description: "Fix the intersections",
		SubmittedBy: "Jane",
	}
	p.BeforeCreate()

	assert.False(t, p.ID.IsZero())
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, 0, p.Progress)
	assert.False(t, p.SubmissionDate.IsZero())
	assert.NotNil(t, p.Milestones)
}

func TestProposalBeforeCreateKeepsExplicitStatus(t *testing.T) {
	p := Proposal{Title: "t", Description: "d", SubmittedBy: "s", Status: StatusAccepted}
	p.BeforeCreate()
	assert.Equal(t, StatusAccepted, p.Status)
}

func TestPublicViewStripsMilestoneDueDates(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := Proposal{
		Title:       "Road Safety",
		Description: "Fix the intersections",
		SubmittedBy: "Jane",
		Status:      StatusAccepted,
		Progress:    40,
		Milestones: []Milestone{
			{Title: "Draft", Completed: true, DueDate: &due},
			{Title: "Review", Completed: false},
		},
	}

	view := p.PublicView()

	require.Len(t, view.Milestones, 2)
	assert.Equal(t, PublicMilestone{Title: "Draft", Completed: true}, view.Milestones[0])
	assert.Equal(t, PublicMilestone{Title: "Review", Completed: false}, view.Milestones[1])
	assert.Equal(t, 40, view.Progress)
}

func TestPublicViewEmptyMilestones(t *testing.T) {
	p := Proposal{Title: "t"}
	view := p.PublicView()
	assert.NotNil(t, view.Milestones)
	assert.Empty(t, view.Milestones)
}

func TestProposalUpdateSetDocumentOnlyProvidedFields(t *testing.T) {
	status := StatusAccepted
	progress := 55
	u := ProposalUpdate{Status: &status, Progress: &progress}

	set := u.SetDocument()

	assert.Len(t, set, 2)
	assert.Equal(t, StatusAccepted, set["status"])
	assert.Equal(t, 55, set["progress"])
	assert.NotContains(t, set, "title")
	assert.NotContains(t, set, "milestones")
}

func TestProposalUpdateSetDocumentEmpty(t *testing.T) {
	u := ProposalUpdate{}
	assert.Empty(t, u.SetDocument())
}

func TestProposalUpdateValidation(t *testing.T) {
	bad := "reopened"
	err := Validate.Struct(&ProposalUpdate{Status: &bad})
	assert.Error(t, err)

	over := 101
	err = Validate.Struct(&ProposalUpdate{Progress: &over})
	assert.Error(t, err)

	ok := StatusRejected
	hundred := 100
	err = Validate.Struct(&ProposalUpdate{Status: &ok, Progress: &hundred})
	assert.NoError(t, err)
}
