package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/AaronM524/SAT-Prep/config"
	"github.com/AaronM524/SAT-Prep/database"
	_ "github.com/AaronM524/SAT-Prep/docs" // Swagger docs - auto-generated
	"github.com/AaronM524/SAT-Prep/internal/controller"
	"github.com/AaronM524/SAT-Prep/internal/logger"
	"github.com/AaronM524/SAT-Prep/internal/middleware"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/AaronM524/SAT-Prep/internal/service"
)

// @title SAT Prep API
// @version 1.0
// @description Practice tests, topic mastery tracking and study-plan generation for SAT preparation.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewCatalogRepository,
			repository.NewQuestionRepository,
			repository.NewPracticeTestRepository,
			repository.NewProgressRepository,
			repository.NewStudyPlanRepository,
			repository.NewStudySessionRepository,
			repository.NewProfileRepository,
		),

		fx.Provide(
			service.NewCatalogService,
			service.NewTestGeneratorService,
			service.NewAnswerService,
			service.NewTestCompletionService,
			service.NewProgressService,
			service.NewStudyPlanService,
			service.NewStudySessionService,
			service.NewProfileService,
		),

		fx.Provide(
			controller.NewCatalogController,
			controller.NewPracticeTestController,
			controller.NewProgressController,
			controller.NewStudyPlanController,
			controller.NewStudySessionController,
			controller.NewProfileController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	catalogCtrl *controller.CatalogController,
	testCtrl *controller.PracticeTestController,
	progressCtrl *controller.ProgressController,
	planCtrl *controller.StudyPlanController,
	sessionCtrl *controller.StudySessionController,
	profileCtrl *controller.ProfileController,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.RequireUser(cfg.Auth.JWTSecret))
	{
		api.GET("/categories", catalogCtrl.GetCategories)
		api.GET("/questions", catalogCtrl.GetQuestions)

		api.POST("/practice-test", testCtrl.CreateTest)
		api.GET("/practice-test", testCtrl.ListTests)
		api.GET("/practice-test/:test_id", testCtrl.GetTest)
		api.PATCH("/practice-test/:test_id", testCtrl.UpdateTest)
		api.POST("/practice-test/:test_id/answer", testCtrl.SubmitAnswer)

		api.GET("/profile", profileCtrl.GetProfile)
		api.POST("/profile", profileCtrl.UpsertProfile)

		api.GET("/progress", progressCtrl.GetProgress)
		api.POST("/progress", progressCtrl.UpdateProgress)

		api.GET("/study-plan", planCtrl.GetPlans)
		api.POST("/study-plan", planCtrl.GeneratePlan)
		api.PATCH("/study-plan", planCtrl.TogglePlan)

		api.GET("/study-session", sessionCtrl.GetSessions)
		api.POST("/study-session", sessionCtrl.LogSession)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SAT Prep API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Category{},
		&model.Topic{},
		&model.Question{},
		&model.Profile{},
		&model.PracticeTest{},
		&model.TestQuestion{},
		&model.UserProgress{},
		&model.StudyPlan{},
		&model.StudySession{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
