package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "capitalys/internal/adapter/http/dto/response"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/usecase"
)

// DashboardHandler serves the home screen aggregate.

type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(overview.Greeting, overview.Goals, overview.Insight, overview.Indicators))
}
