package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "capitalys/internal/adapter/http/dto/request"
	response "capitalys/internal/adapter/http/dto/response"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase"
	"capitalys/pkg"
)

var errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)

// FinancialProfileHandler handles the financial profile read and upsert.

type FinancialProfileHandler struct {
	profiles usecase.IFinancialProfileUseCase
}

func NewFinancialProfileHandler(profiles usecase.IFinancialProfileUseCase) *FinancialProfileHandler {
	return &FinancialProfileHandler{profiles: profiles}
}

// Get returns the caller's profile. An empty profile (never saved) is
// returned with is_complete=false rather than a 404, so clients always
// learn which fields are missing.
func (h *FinancialProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.GetByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialProfile(profile))
}

// Save upserts the caller's profile. Incomplete payloads are rejected with
// 422 and the missing field names.
func (h *FinancialProfileHandler) Save(c *gin.Context) {
	var payload request.SaveProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	profile, err := h.profiles.Save(c.Request.Context(), middleware.UserID(c), usecase.SaveProfileInput{
		IncomeRange:     payload.IncomeRange,
		CreditStatus:    payload.CreditStatus,
		RiskProfile:     entities.RiskProfile(payload.ResolveRiskProfile()),
		IncomeStability: entities.IncomeStability(payload.ResolveIncomeStability()),
		Dependents:      payload.Dependents,
	})
	if err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialProfile(profile))
}
