package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "capitalys/internal/adapter/http/dto/request"
	response "capitalys/internal/adapter/http/dto/response"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/usecase"
	"capitalys/pkg"
)

var errInvalidInterestPayload = pkg.NewDomainErrorSimple("INVALID_INTEREST_INPUT", "Invalid partner interest payload", http.StatusBadRequest)

// PartnerInterestHandler registers a user's interest in a ranked strategy.

type PartnerInterestHandler struct {
	interests usecase.IPartnerInterestUseCase
}

func NewPartnerInterestHandler(interests usecase.IPartnerInterestUseCase) *PartnerInterestHandler {
	return &PartnerInterestHandler{interests: interests}
}

func (h *PartnerInterestHandler) Register(c *gin.Context) {
	var payload request.PartnerInterestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInterestPayload.HTTPStatus, errInvalidInterestPayload.ToHTTPError())
		return
	}

	interest, err := h.interests.Register(
		c.Request.Context(),
		middleware.UserID(c),
		payload.ResolveGoalID(),
		payload.ResolveStrategy(),
	)
	if err != nil {
		appErr := mapInterestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPartnerInterest(interest))
}

func mapInterestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidGoalID),
		errors.Is(err, usecase.ErrInvalidStrategy):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGoalNotFound):
		return pkg.NewDomainErrorSimple("GOAL_NOT_FOUND", "Goal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
