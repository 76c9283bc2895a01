package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/oporajita/reformtrack/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProposalRepo interface {
	CreateProposal(ctx context.Context, proposal *Proposal) (*Proposal, error)
	ListProposals(ctx context.Context) ([]*Proposal, error)
	ListAcceptedProposals(ctx context.Context) ([]*Proposal, error)
	ListRecentAcceptedProposals(ctx context.Context, limit int) ([]*Proposal, error)
	GetProposalByID(ctx context.Context, id primitive.ObjectID) (*Proposal, error)
	UpdateProposal(ctx context.Context, id primitive.ObjectID, update *ProposalUpdate) (*Proposal, error)
	DeleteProposal(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateProposal(ctx context.Context, proposal *Proposal) (*Proposal, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, ProposalsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	proposal.BeforeCreate()

	_, err = col.InsertOne(ctx, proposal)
	observability.CountDatabaseOperation("insert_proposal", err)
	if err != nil {
		return nil, fmt.Errorf("error inserting proposal: %v", err)
	}

	return proposal, nil
}

func (mdb *MongodbRepo) ListProposals(ctx context.Context) ([]*Proposal, error) {
	return mdb.findProposals(ctx, bson.M{}, nil, "list_proposals")
}

func (mdb *MongodbRepo) ListAcceptedProposals(ctx context.Context) ([]*Proposal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submissionDate", Value: -1}})
	return mdb.findProposals(ctx, bson.M{"status": StatusAccepted}, opts, "list_accepted_proposals")
}

// ListRecentAcceptedProposals backs the public view: newest accepted first,
// capped at limit.
func (mdb *MongodbRepo) ListRecentAcceptedProposals(ctx context.Context, limit int) ([]*Proposal, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "submissionDate", Value: -1}}).
		SetLimit(int64(limit))
	return mdb.findProposals(ctx, bson.M{"status": StatusAccepted}, opts, "list_public_proposals")
}

func (mdb *MongodbRepo) findProposals(ctx context.Context, filter bson.M, opts *options.FindOptions, operation string) ([]*Proposal, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, ProposalsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var cursor *mongo.Cursor
	if opts != nil {
		cursor, err = col.Find(ctx, filter, opts)
	} else {
		cursor, err = col.Find(ctx, filter)
	}
	observability.CountDatabaseOperation(operation, err)
	if err != nil {
		return nil, fmt.Errorf("error finding proposals: %v", err)
	}
	defer cursor.Close(ctx)

	proposals := []*Proposal{}
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, fmt.Errorf("error decoding proposals: %v", err)
	}

	return proposals, nil
}

func (mdb *MongodbRepo) GetProposalByID(ctx context.Context, id primitive.ObjectID) (*Proposal, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, ProposalsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var proposal Proposal
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&proposal)
	observability.CountDatabaseOperation("get_proposal", err)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding proposal: %v", err)
	}

	return &proposal, nil
}

// UpdateProposal merges the provided fields into the stored document and
// returns the updated proposal. Last write wins; there is no version check.
func (mdb *MongodbRepo) UpdateProposal(ctx context.Context, id primitive.ObjectID, update *ProposalUpdate) (*Proposal, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, ProposalsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := update.SetDocument()
	if len(set) == 0 {
		return mdb.GetProposalByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Proposal
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	observability.CountDatabaseOperation("update_proposal", err)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating proposal: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteProposal(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, ProposalsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	observability.CountDatabaseOperation("delete_proposal", err)
	if err != nil {
		return fmt.Errorf("error deleting proposal: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
