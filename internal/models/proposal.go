package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProposalsColName = "proposals"

	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

	// PublicProposalLimit caps the home-page listing.
	PublicProposalLimit = 6
)

type Milestone struct {
	Title     string     `bson:"title" json:"title"`
	Completed bool       `bson:"completed" json:"completed"`
	DueDate   *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
}

// Proposal is a submitted reform initiative. Progress and milestone completion
// are independently settable; the server never derives one from the other.
type Proposal struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title" validate:"required"`
	Description    string             `bson:"description" json:"description" validate:"required"`
	SubmittedBy    string             `bson:"submittedBy" json:"submittedBy" validate:"required"`
	SubmissionDate time.Time          `bson:"submissionDate" json:"submissionDate"`
	Status         string             `bson:"status" json:"status" validate:"omitempty,oneof=pending accepted rejected"`
	Progress       int                `bson:"progress" json:"progress" validate:"min=0,max=100"`
	Milestones     []Milestone        `bson:"milestones" json:"milestones"`
}

func (p *Proposal) BeforeCreate() {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.SubmissionDate.IsZero() {
		p.SubmissionDate = time.Now()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.Milestones == nil {
		p.Milestones = []Milestone{}
	}
}

// ProposalUpdate is the merge shape of a PUT: only the fields the client sent
// are written, the rest of the document is left as stored. There is no version
// check, so concurrent updates are last-write-wins.
type ProposalUpdate struct {
	Title       *string      `json:"title" validate:"omitempty,min=1"`
	Description *string      `json:"description" validate:"omitempty,min=1"`
	SubmittedBy *string      `json:"submittedBy" validate:"omitempty,min=1"`
	Status      *string      `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
	Progress    *int         `json:"progress" validate:"omitempty,min=0,max=100"`
	Milestones  *[]Milestone `json:"milestones"`
}

// SetDocument builds the $set document from the provided fields only.
func (u *ProposalUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.SubmittedBy != nil {
		set["submittedBy"] = *u.SubmittedBy
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Progress != nil {
		set["progress"] = *u.Progress
	}
	if u.Milestones != nil {
		set["milestones"] = *u.Milestones
	}
	return set
}

type PublicMilestone struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// PublicProposal is the reduced projection shown on the unauthenticated home
// page. Milestones are stripped to title and completion flag.
type PublicProposal struct {
	ID             primitive.ObjectID `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Progress       int                `json:"progress"`
	SubmissionDate time.Time          `json:"submissionDate"`
	Milestones     []PublicMilestone  `json:"milestones"`
}

func (p *Proposal) PublicView() PublicProposal {
	milestones := make([]PublicMilestone, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, PublicMilestone{
			Title:     m.Title,
			Completed: m.Completed,
		})
	}
	return PublicProposal{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Progress:       p.Progress,
		SubmissionDate: p.SubmissionDate,
		Milestones:     milestones,
	}
}
