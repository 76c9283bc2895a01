package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SurveysColName = "surveys"

	QuestionMultipleChoice = "multiple-choice"
	QuestionRating         = "rating"
	QuestionOpenEnded      = "open-ended"

	// OpenEndedSampleLimit caps the verbatim responses surfaced in a summary.
	OpenEndedSampleLimit = 5
)

type SurveyQuestion struct {
	QuestionText string   `bson:"questionText" json:"questionText" validate:"required"`
	QuestionType string   `bson:"questionType" json:"questionType" validate:"required,oneof=multiple-choice rating open-ended"`
	Options      []string `bson:"options" json:"options"`
}

// SurveyResponse is one submitted answer set. Answers are index-aligned with
// the survey's questions; an empty string means the question was skipped.
type SurveyResponse struct {
	Answers          []string  `bson:"answers" json:"answers"`
	Completed        bool      `bson:"completed" json:"completed"`
	TimeSpentMinutes float64   `bson:"timeSpentMinutes" json:"timeSpentMinutes"`
	SubmittedAt      time.Time `bson:"submittedAt" json:"submittedAt"`
}

type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Questions   []SurveyQuestion   `bson:"questions" json:"questions" validate:"required,min=1,dive"`
	Responses   []SurveyResponse   `bson:"responses" json:"responses"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (s *Survey) BeforeCreate() {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if s.Responses == nil {
		s.Responses = []SurveyResponse{}
	}
}

// QuestionSummary holds the per-question statistics. Which fields are set
// depends on the question type.
type QuestionSummary struct {
	TotalAnswers int `json:"totalAnswers"`

	// multiple-choice
	OptionCounts      map[string]int `json:"optionCounts,omitempty"`
	OptionPercentages map[string]int `json:"optionPercentages,omitempty"`

	// rating
	AverageRating     float64     `json:"averageRating,omitempty"`
	Ratings           map[int]int `json:"ratings,omitempty"`
	RatingPercentages map[int]int `json:"ratingPercentages,omitempty"`

	// open-ended
	Responses []string `json:"responses,omitempty"`
}

type SkippedQuestion struct {
	Index   int `json:"index"`
	Skipped int `json:"skipped"`
}

type SurveySummary struct {
	SurveyID              primitive.ObjectID `json:"surveyId"`
	TotalResponses        int                `json:"totalResponses"`
	CompletionRate        int                `json:"completionRate"`
	AverageTimeToComplete float64            `json:"averageTimeToComplete"`
	MostSkippedQuestion   *SkippedQuestion   `json:"mostSkippedQuestion"`
	Questions             []QuestionSummary  `json:"questions"`
}
