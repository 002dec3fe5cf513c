package routes

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "capitalys/docs" // This will be auto-generated
	"capitalys/internal/adapter/http/handlers"
	"capitalys/internal/adapter/http/middleware"
	repository2 "capitalys/internal/adapter/persistence/repository"
	"capitalys/internal/decisioning"
	"capitalys/internal/events"
	"capitalys/internal/infrastructure/config"
	"capitalys/internal/infrastructure/database"
	"capitalys/internal/infrastructure/partners"
	"capitalys/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	ddb := database.ConnectDynamoDB(cfg)

	goalRepo := repository2.NewGoalDynamoRepository(ddb)
	profileRepo := repository2.NewFinancialProfileDynamoRepository(ddb)
	decisionRepo := repository2.NewDecisionResultDynamoRepository(ddb)
	historyRepo := repository2.NewDecisionHistoryDynamoRepository(ddb)
	interestRepo := repository2.NewPartnerInterestDynamoRepository(ddb)
	indicatorRepo := repository2.NewIndicatorDynamoRepository(ddb)
	insightRepo := repository2.NewInsightDynamoRepository(ddb)

	bus := events.NewBus(logger)
	feed := events.NewDecisionFeed(bus)

	engine := decisioning.NewEngine()
	worker := decisioning.NewWorker(bus, feed, engine, decisionRepo, profileRepo, indicatorRepo, cfg.Analysis.ProcessingDelay, logger)
	go worker.Run(context.Background())

	scheduler := decisioning.NewScheduler(worker, goalRepo, decisionRepo, historyRepo, indicatorRepo, cfg.Analysis.ReevaluationCron, logger)
	if err := scheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start reevaluation scheduler: %v", err.Error())
	}

	notifier := partners.NewWebhookNotifier(cfg.Partner.WebhookURL, cfg.Partner.Timeout)

	goalUseCase := usecase.NewGoalUseCase(goalRepo, profileRepo, feed)
	analysisUseCase := usecase.NewGoalAnalysisUseCase(goalUseCase, decisionRepo, feed, cfg.Analysis.WaitTimeout)
	profileUseCase := usecase.NewFinancialProfileUseCase(profileRepo)
	decisionUseCase := usecase.NewDecisionUseCase(decisionRepo, historyRepo)
	interestUseCase := usecase.NewPartnerInterestUseCase(interestRepo, goalRepo, decisionRepo, notifier)
	dashboardUseCase := usecase.NewDashboardUseCase(goalRepo, insightRepo, indicatorRepo)

	goalHandler := handlers.NewGoalHandler(goalUseCase, analysisUseCase, decisionUseCase)
	decisionHandler := handlers.NewDecisionHandler(goalUseCase, decisionUseCase)
	streamHandler := handlers.NewStreamHandler(goalUseCase, decisionUseCase, feed, logger)
	profileHandler := handlers.NewFinancialProfileHandler(profileUseCase)
	interestHandler := handlers.NewPartnerInterestHandler(interestUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("", middleware.RequireAuth(cfg.Auth.JWTSecret))
	addGoalRoutes(authed, goalHandler, decisionHandler, streamHandler)
	addProfileRoutes(authed, profileHandler)
	addPartnerRoutes(authed, interestHandler)
	addDashboardRoutes(authed, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
