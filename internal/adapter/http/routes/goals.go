package routes

import (
	"capitalys/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGoals           = "/goals"
	PathProfile         = "/profile"
	PathPartnerInterest = "/partner-interest"
	PathDashboard       = "/dashboard"
)

func addGoalRoutes(rg *gin.RouterGroup, goalHandler *handlers.GoalHandler, decisionHandler *handlers.DecisionHandler, streamHandler *handlers.StreamHandler) {
	goals := rg.Group(PathGoals)
	{
		goals.POST("", goalHandler.Create)
		// Cria o objetivo e aguarda o resultado da análise.
		goals.POST("/analyze", goalHandler.SubmitAndAnalyze)
		goals.GET("", goalHandler.List)
		goals.GET("/:id", goalHandler.GetByID)
		goals.PATCH("/:id/archive", goalHandler.Archive)

		goals.GET("/:id/decision", decisionHandler.GetLatest)
		goals.GET("/:id/history", decisionHandler.GetHistory)
		goals.GET("/:id/stream", streamHandler.Stream)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.FinancialProfileHandler) {
	profile := rg.Group(PathProfile)
	{
		profile.GET("/financial", profileHandler.Get)
		profile.PUT("/financial", profileHandler.Save)
	}
}

func addPartnerRoutes(rg *gin.RouterGroup, interestHandler *handlers.PartnerInterestHandler) {
	rg.POST(PathPartnerInterest, interestHandler.Register)
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET(PathDashboard, dashboardHandler.Get)
}
