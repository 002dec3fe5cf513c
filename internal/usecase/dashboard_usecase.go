package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
	"capitalys/pkg"
)

const dashboardGoalLimit = 5

// DashboardOverview aggregates everything the home screen renders.
type DashboardOverview struct {
	Greeting   string
	Goals      []entities.FinancialGoal
	Insight    *entities.Insight
	Indicators []entities.IndicatorAnalysis
}

type IDashboardUseCase interface {
	Overview(ctx context.Context, userID string) (DashboardOverview, error)
}

type DashboardUseCase struct {
	goals      interfaces.IGoalRepository
	insights   interfaces.IInsightRepository
	indicators interfaces.IIndicatorRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(goals interfaces.IGoalRepository, insights interfaces.IInsightRepository, indicators interfaces.IIndicatorRepository) *DashboardUseCase {
	return &DashboardUseCase{goals: goals, insights: insights, indicators: indicators}
}

// Overview loads the user's active goals plus market context. Insight and
// indicator reads are decorative: their failures are logged and the
// dashboard still renders.
func (u *DashboardUseCase) Overview(ctx context.Context, userID string) (DashboardOverview, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DashboardOverview{}, ErrInvalidUserID
	}

	goals, err := u.goals.ListByUser(ctx, userID, true, dashboardGoalLimit)
	if err != nil {
		return DashboardOverview{}, err
	}

	overview := DashboardOverview{
		Greeting: pkg.Greeting(time.Now()),
		Goals:    goals,
	}

	if insight, err := u.insights.Latest(ctx); err != nil {
		log.Printf("[dashboard][usecase] insight read failed user_id=%s err=%v", userID, err)
	} else {
		overview.Insight = insight
	}

	if analyses, err := u.indicators.LatestAnalyses(ctx); err != nil {
		log.Printf("[dashboard][usecase] indicator read failed user_id=%s err=%v", userID, err)
	} else {
		overview.Indicators = analyses
	}

	return overview, nil
}
