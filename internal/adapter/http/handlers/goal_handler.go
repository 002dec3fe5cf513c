package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	request "capitalys/internal/adapter/http/dto/request"
	response "capitalys/internal/adapter/http/dto/response"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase"
	"capitalys/pkg"
)

var errInvalidGoalPayload = pkg.NewDomainErrorSimple("INVALID_GOAL_INPUT", "Invalid goal payload", http.StatusBadRequest)

// GoalHandler handles HTTP requests for financial goals, including the
// blocking submit-and-await analysis flow.

type GoalHandler struct {
	goals     usecase.IGoalUseCase
	analysis  usecase.IGoalAnalysisUseCase
	decisions usecase.IDecisionUseCase
}

func NewGoalHandler(goals usecase.IGoalUseCase, analysis usecase.IGoalAnalysisUseCase, decisions usecase.IDecisionUseCase) *GoalHandler {
	return &GoalHandler{goals: goals, analysis: analysis, decisions: decisions}
}

// SubmitAndAnalyze creates the goal and blocks until its decision result is
// available or the wait window closes.
//
// Responds 200 with the decision when the analysis resolved in time, 202
// with status "processando" when it is still running, and 422 when the
// user's financial profile is incomplete.
func (h *GoalHandler) SubmitAndAnalyze(c *gin.Context) {
	payload, ok := bindGoalPayload(c)
	if !ok {
		return
	}

	out, err := h.analysis.SubmitAndAwait(c.Request.Context(), middleware.UserID(c), payload)
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if out.Status == usecase.AnalysisProcessing {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromAnalysis(string(out.Status), out.Goal, out.Decision))
}

// Create stores a goal without waiting for its analysis. The decision is
// produced asynchronously and can be fetched or streamed afterwards.
func (h *GoalHandler) Create(c *gin.Context) {
	payload, ok := bindGoalPayload(c)
	if !ok {
		return
	}

	goal, err := h.goals.Create(c.Request.Context(), middleware.UserID(c), payload)
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromGoal(goal))
}

// GetByID returns the goal together with its latest decision and strategy
// transition history. The decision reads are supplementary: a failure there
// degrades to an empty section instead of failing the whole detail.
func (h *GoalHandler) GetByID(c *gin.Context) {
	goalID := c.Param("id")
	goal, err := h.goals.GetByID(c.Request.Context(), goalID, middleware.UserID(c))
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	decision, err := h.decisions.LatestByGoalID(c.Request.Context(), goalID)
	if err != nil {
		log.Printf("[goal][handler] latest decision read failed goal_id=%s err=%v", goalID, err)
		decision = nil
	}
	history, err := h.decisions.HistoryByGoalID(c.Request.Context(), goalID)
	if err != nil {
		log.Printf("[goal][handler] decision history read failed goal_id=%s err=%v", goalID, err)
		history = nil
	}
	c.JSON(http.StatusOK, response.FromGoalDetail(goal, decision, history))
}

func (h *GoalHandler) List(c *gin.Context) {
	onlyActive := strings.EqualFold(c.DefaultQuery("only_active", "true"), "true")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	goals, err := h.goals.ListByUser(c.Request.Context(), middleware.UserID(c), onlyActive, limit)
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGoals(goals))
}

func (h *GoalHandler) Archive(c *gin.Context) {
	goal, err := h.goals.Archive(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGoal(goal))
}

func bindGoalPayload(c *gin.Context) (usecase.CreateGoalInput, bool) {
	var payload request.CreateGoalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGoalPayload.HTTPStatus, errInvalidGoalPayload.ToHTTPError())
		return usecase.CreateGoalInput{}, false
	}
	return usecase.CreateGoalInput{
		AssetType:        payload.ResolveAssetType(),
		EstimatedValue:   payload.EstimatedValue,
		AvailableCapital: payload.AvailableCapital,
		DesiredTerm:      payload.DesiredTerm,
		UrgencyLevel:     entities.UrgencyLevel(payload.ResolveUrgency()),
	}, true
}

func mapGoalError(err error) *pkg.AppError {
	var incomplete *usecase.IncompleteProfileError
	switch {
	case errors.As(err, &incomplete):
		return pkg.NewDomainErrorSimple(
			"PROFILE_INCOMPLETE",
			"Complete seu perfil financeiro: "+strings.Join(incomplete.Missing, ", "),
			http.StatusUnprocessableEntity,
		)
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidGoalID),
		errors.Is(err, usecase.ErrInvalidAssetType),
		errors.Is(err, usecase.ErrInvalidGoalValue),
		errors.Is(err, usecase.ErrInvalidTerm),
		errors.Is(err, usecase.ErrInvalidUrgency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGoalNotFound):
		return pkg.NewDomainErrorSimple("GOAL_NOT_FOUND", "Goal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
