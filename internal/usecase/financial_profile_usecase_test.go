package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"capitalys/internal/domain/entities"
	mock_interfaces "capitalys/internal/usecase/interfaces/mocks"
)

func completeInput() SaveProfileInput {
	return SaveProfileInput{
		IncomeRange:     "5000-10000",
		CreditStatus:    "regular",
		RiskProfile:     entities.RiskModerado,
		IncomeStability: entities.StabilityCLT,
		Dependents:      2,
	}
}

func TestProfileSave_CreatesWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFinancialProfileRepository(ctrl)

	repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.FinancialProfile{}, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.FinancialProfile) (entities.FinancialProfile, error) {
			if p.ID == "" {
				t.Fatal("expected generated profile id")
			}
			if p.CreatedAt.IsZero() {
				t.Fatal("expected created_at to be set")
			}
			return p, nil
		})

	uc := NewFinancialProfileUseCase(repo)

	p, err := uc.Save(context.Background(), "user-1", completeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserID != "user-1" || p.Dependents != 2 {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestProfileSave_PreservesIdentityOnUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFinancialProfileRepository(ctrl)

	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	existing := completeProfile("user-1")
	existing.CreatedAt = createdAt

	repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(existing, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.FinancialProfile) (entities.FinancialProfile, error) {
			if p.ID != "prof-1" {
				t.Fatalf("expected existing id preserved, got %s", p.ID)
			}
			if !p.CreatedAt.Equal(createdAt) {
				t.Fatalf("expected created_at preserved, got %s", p.CreatedAt)
			}
			return p, nil
		})

	uc := NewFinancialProfileUseCase(repo)

	input := completeInput()
	input.RiskProfile = entities.RiskAgressivo
	p, err := uc.Save(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RiskProfile != entities.RiskAgressivo {
		t.Fatalf("expected updated risk profile, got %s", p.RiskProfile)
	}
}

func TestProfileSave_RejectsIncompleteBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFinancialProfileRepository(ctrl)
	// No expectations: an incomplete payload must not touch the store.

	uc := NewFinancialProfileUseCase(repo)

	input := completeInput()
	input.CreditStatus = "  "
	_, err := uc.Save(context.Background(), "user-1", input)
	var incomplete *IncompleteProfileError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteProfileError, got %v", err)
	}
	if len(incomplete.Missing) != 1 || incomplete.Missing[0] != "Situação de crédito" {
		t.Fatalf("unexpected missing fields: %v", incomplete.Missing)
	}
}

func TestProfileSave_NormalizesNegativeDependents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFinancialProfileRepository(ctrl)

	repo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.FinancialProfile{}, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.FinancialProfile) (entities.FinancialProfile, error) {
			return p, nil
		})

	uc := NewFinancialProfileUseCase(repo)

	input := completeInput()
	input.Dependents = -3
	p, err := uc.Save(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Dependents != 0 {
		t.Fatalf("expected dependents clamped to 0, got %d", p.Dependents)
	}
}

func TestProfileGetByUserID_BlankUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIFinancialProfileRepository(ctrl)
	uc := NewFinancialProfileUseCase(repo)

	_, err := uc.GetByUserID(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}
