package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "capitalys/internal/adapter/http/dto/response"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/usecase"
	"capitalys/pkg"
)

// DecisionHandler serves decision results and their transition history.
//
// Reads are scoped to the caller's goals: the goal is loaded first and a
// foreign goal id resolves as not found.

type DecisionHandler struct {
	goals     usecase.IGoalUseCase
	decisions usecase.IDecisionUseCase
}

func NewDecisionHandler(goals usecase.IGoalUseCase, decisions usecase.IDecisionUseCase) *DecisionHandler {
	return &DecisionHandler{goals: goals, decisions: decisions}
}

// GetLatest returns the current decision for a goal, 404 when the analysis
// has not produced one yet.
func (h *DecisionHandler) GetLatest(c *gin.Context) {
	goalID := c.Param("id")
	if _, err := h.goals.GetByID(c.Request.Context(), goalID, middleware.UserID(c)); err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	decision, err := h.decisions.LatestByGoalID(c.Request.Context(), goalID)
	if err != nil {
		appErr := mapDecisionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if decision == nil {
		notFound := pkg.NewDomainErrorSimple("DECISION_NOT_FOUND", "No decision result for this goal yet", http.StatusNotFound)
		c.JSON(notFound.HTTPStatus, notFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(decision))
}

func (h *DecisionHandler) GetHistory(c *gin.Context) {
	goalID := c.Param("id")
	if _, err := h.goals.GetByID(c.Request.Context(), goalID, middleware.UserID(c)); err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entries, err := h.decisions.HistoryByGoalID(c.Request.Context(), goalID)
	if err != nil {
		appErr := mapDecisionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDecisionHistory(entries))
}

func mapDecisionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGoalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
