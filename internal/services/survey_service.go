package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oporajita/reformtrack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SurveyService struct {
	surveyRepo models.SurveyRepo
}

func NewSurveyService(surveyRepo models.SurveyRepo) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
	}
}

func (ss *SurveyService) CreateSurvey(ctx context.Context, survey *models.Survey) (*models.Survey, error) {
	if err := models.Validate.Struct(survey); err != nil {
		return nil, fmt.Errorf("invalid survey data: %v", err)
	}

	return ss.surveyRepo.CreateSurvey(ctx, survey)
}

func (ss *SurveyService) ListSurveys(ctx context.Context) ([]*models.Survey, error) {
	return ss.surveyRepo.ListSurveys(ctx)
}

func (ss *SurveyService) GetSurveyByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	return ss.surveyRepo.GetSurveyByID(ctx, id)
}

func (ss *SurveyService) DeleteSurvey(ctx context.Context, id primitive.ObjectID) error {
	return ss.surveyRepo.DeleteSurvey(ctx, id)
}

// SubmitResponse appends one answer set. Answers must be index-aligned with
// the survey's questions; the summary arithmetic depends on that.
func (ss *SurveyService) SubmitResponse(ctx context.Context, id primitive.ObjectID, response *models.SurveyResponse) error {
	survey, err := ss.surveyRepo.GetSurveyByID(ctx, id)
	if err != nil {
		return err
	}

	if len(response.Answers) != len(survey.Questions) {
		return fmt.Errorf("expected %d answers, got %d", len(survey.Questions), len(response.Answers))
	}
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}

	return ss.surveyRepo.AddSurveyResponse(ctx, id, response)
}

// Summarize computes the per-question and survey-level statistics for the
// summary page.
func (ss *SurveyService) Summarize(ctx context.Context, id primitive.ObjectID) (*models.SurveySummary, error) {
	survey, err := ss.surveyRepo.GetSurveyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return BuildSurveySummary(survey), nil
}

// BuildSurveySummary aggregates a survey's responses. Percentages are rounded
// and the denominator is clamped to at least one so an unanswered question
// reports 0% everywhere instead of dividing by zero.
func BuildSurveySummary(survey *models.Survey) *models.SurveySummary {
	totalResponses := len(survey.Responses)

	summary := &models.SurveySummary{
		SurveyID:       survey.ID,
		TotalResponses: totalResponses,
		Questions:      make([]models.QuestionSummary, 0, len(survey.Questions)),
	}

	completed := 0
	totalMinutes := 0.0
	for _, r := range survey.Responses {
		if r.Completed {
			completed++
		}
		totalMinutes += r.TimeSpentMinutes
	}
	if totalResponses > 0 {
		summary.CompletionRate = percentage(completed, totalResponses)
		summary.AverageTimeToComplete = roundToTenth(totalMinutes / float64(totalResponses))
	}

	for i, q := range survey.Questions {
		qs := summarizeQuestion(survey, i, q)
		summary.Questions = append(summary.Questions, qs)

		skipped := totalResponses - qs.TotalAnswers
		if skipped > 0 && (summary.MostSkippedQuestion == nil || skipped > summary.MostSkippedQuestion.Skipped) {
			summary.MostSkippedQuestion = &models.SkippedQuestion{Index: i, Skipped: skipped}
		}
	}

	return summary
}

func summarizeQuestion(survey *models.Survey, index int, question models.SurveyQuestion) models.QuestionSummary {
	answers := answersFor(survey, index)
	qs := models.QuestionSummary{TotalAnswers: len(answers)}

	switch question.QuestionType {
	case models.QuestionMultipleChoice:
		qs.OptionCounts = map[string]int{}
		for _, option := range question.Options {
			qs.OptionCounts[option] = 0
		}
		for _, a := range answers {
			qs.OptionCounts[a]++
		}
		qs.OptionPercentages = map[string]int{}
		for option, count := range qs.OptionCounts {
			qs.OptionPercentages[option] = percentage(count, qs.TotalAnswers)
		}

	case models.QuestionRating:
		qs.Ratings = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
		sum, rated := 0, 0
		for _, a := range answers {
			value, err := strconv.Atoi(a)
			if err != nil || value < 1 || value > 5 {
				continue
			}
			qs.Ratings[value]++
			sum += value
			rated++
		}
		if rated > 0 {
			qs.AverageRating = roundToTenth(float64(sum) / float64(rated))
		}
		qs.RatingPercentages = map[int]int{}
		for star, count := range qs.Ratings {
			qs.RatingPercentages[star] = percentage(count, qs.TotalAnswers)
		}

	case models.QuestionOpenEnded:
		if len(answers) > models.OpenEndedSampleLimit {
			answers = answers[:models.OpenEndedSampleLimit]
		}
		qs.Responses = answers
	}

	return qs
}

// answersFor collects the non-empty answers to one question across all
// responses. Responses shorter than the question list count as skips.
func answersFor(survey *models.Survey, index int) []string {
	answers := []string{}
	for _, r := range survey.Responses {
		if index >= len(r.Answers) {
			continue
		}
		a := strings.TrimSpace(r.Answers[index])
		if a == "" {
			continue
		}
		answers = append(answers, a)
	}
	return answers
}

func percentage(count, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
