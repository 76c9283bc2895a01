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

type SurveyRepo interface {
	CreateSurvey(ctx context.Context, survey *Survey) (*Survey, error)
	ListSurveys(ctx context.Context) ([]*Survey, error)
	GetSurveyByID(ctx context.Context, id primitive.ObjectID) (*Survey, error)
	DeleteSurvey(ctx context.Context, id primitive.ObjectID) error
	AddSurveyResponse(ctx context.Context, id primitive.ObjectID, response *SurveyResponse) error
}

func (mdb *MongodbRepo) CreateSurvey(ctx context.Context, survey *Survey) (*Survey, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, SurveysColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	survey.BeforeCreate()

	_, err = col.InsertOne(ctx, survey)
	observability.CountDatabaseOperation("insert_survey", err)
	if err != nil {
		return nil, fmt.Errorf("error inserting survey: %v", err)
	}

	return survey, nil
}

func (mdb *MongodbRepo) ListSurveys(ctx context.Context) ([]*Survey, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, SurveysColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	observability.CountDatabaseOperation("list_surveys", err)
	if err != nil {
		return nil, fmt.Errorf("error finding surveys: %v", err)
	}
	defer cursor.Close(ctx)

	surveys := []*Survey{}
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, fmt.Errorf("error decoding surveys: %v", err)
	}

	return surveys, nil
}

func (mdb *MongodbRepo) GetSurveyByID(ctx context.Context, id primitive.ObjectID) (*Survey, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, SurveysColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var survey Survey
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	observability.CountDatabaseOperation("get_survey", err)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding survey: %v", err)
	}

	return &survey, nil
}

func (mdb *MongodbRepo) DeleteSurvey(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, SurveysColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	observability.CountDatabaseOperation("delete_survey", err)
	if err != nil {
		return fmt.Errorf("error deleting survey: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// AddSurveyResponse appends one answer set to the survey document.
func (mdb *MongodbRepo) AddSurveyResponse(ctx context.Context, id primitive.ObjectID, response *SurveyResponse) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, SurveysColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"responses": response}})
	observability.CountDatabaseOperation("add_survey_response", err)
	if err != nil {
		return fmt.Errorf("error adding survey response: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
