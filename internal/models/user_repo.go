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

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByNID(ctx context.Context, nid string) (*User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	EnsureUserIndexes(ctx context.Context) error
}

// EnsureUserIndexes creates the unique indexes backing the email/NID
// uniqueness invariants.
func (mdb *MongodbRepo) EnsureUserIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "nid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("nid_unique"),
		},
	}

	_, err = col.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("error creating indexes: %v", err)
	}

	return nil
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	user.BeforeCreate()

	_, err = col.InsertOne(ctx, user)
	observability.CountDatabaseOperation("insert_user", err)
	if err != nil {
		// The existence pre-checks and the insert are separate operations, so a
		// concurrent duplicate registration can still land here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error inserting user: %v", err)
	}

	return user, nil
}

func (mdb *MongodbRepo) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"email": email}, "find_user_by_email")
}

func (mdb *MongodbRepo) FindUserByNID(ctx context.Context, nid string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"nid": nid}, "find_user_by_nid")
}

func (mdb *MongodbRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return mdb.findUser(ctx, bson.M{"_id": id}, "find_user_by_id")
}

func (mdb *MongodbRepo) findUser(ctx context.Context, filter bson.M, operation string) (*User, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, filter).Decode(&user)
	observability.CountDatabaseOperation(operation, err)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %v", err)
	}

	return &user, nil
}
