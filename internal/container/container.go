package container

import (
	"log/slog"

	"github.com/oporajita/reformtrack/internal/config"
	"github.com/oporajita/reformtrack/internal/models"
	"github.com/oporajita/reformtrack/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	Repo *models.MongodbRepo

	AuthService     *services.AuthService
	UserService     *services.UserService
	ProposalService *services.ProposalService
	SurveyService   *services.SurveyService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	authService := services.NewAuthService(repo, cfg.JWTSecret)
	userService := services.NewUserService(repo, cfg.JWTSecret)
	proposalService := services.NewProposalService(repo)
	surveyService := services.NewSurveyService(repo)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		Repo:            repo,
		AuthService:     authService,
		UserService:     userService,
		ProposalService: proposalService,
		SurveyService:   surveyService,
	}
}
