package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	mock_interfaces "consultoria_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dashboardRecords() []entities.Engagement {
	five, _ := entities.NewRating(5)
	return []entities.Engagement{
		{ID: "1", Consultant: "Jane", Tier: entities.TierPro, Type: entities.EngagementTypeConsulting, Status: entities.EngagementStatusCompleted,
			StartDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Rating: five, DurationDays: 20, DeadlineMet: true,
			ConsultingValue: decimal.NewFromInt(15000), CommissionPercent: 12, CommissionValue: decimal.NewFromInt(1800)},
		{ID: "2", Consultant: "Jane", Tier: entities.TierBasic, Type: entities.EngagementTypeUpsell, Status: entities.EngagementStatusInProgress,
			StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ConsultingValue: decimal.NewFromInt(2000)},
		{ID: "3", Tier: entities.TierPro, Type: entities.EngagementTypeConsulting, Status: entities.EngagementStatusCompleted,
			StartDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), DurationDays: 10,
			ConsultingValue: decimal.NewFromInt(10000), CommissionPercent: 8, CommissionValue: decimal.NewFromInt(800)},
	}
}

func TestDashboardUseCase_Stats(t *testing.T) {
	t.Run("repo error surfaces unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewDashboardUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Stats(context.Background(), analytics.FilterSpec{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("filters before aggregating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewDashboardUseCase(repo, nil)
		filter := analytics.FilterSpec{Consultant: "Jane"}
		repo.EXPECT().List(gomock.Any(), filter).Return(dashboardRecords(), nil)

		s, err := uc.Stats(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalProjects != 2 || s.CompletedProjects != 1 || s.ActiveProjects != 1 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if !s.TotalRevenue.Equal(decimal.NewFromInt(17000)) || s.AverageRating != 5 || s.DeadlineComplianceRate != 100 {
			t.Fatalf("unexpected figures: %+v", s)
		}
	})
}

func TestDashboardUseCase_Breakdown(t *testing.T) {
	t.Run("invalid dimension", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil)
		if _, err := uc.Breakdown(context.Background(), analytics.FilterSpec{}, "region"); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})

	t.Run("commission by consultant counts completed only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewDashboardUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(dashboardRecords(), nil)

		buckets, err := uc.Breakdown(context.Background(), analytics.FilterSpec{}, DimensionConsultant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %+v", buckets)
		}
		if buckets[0].Key != "Jane" || buckets[0].Count != 1 || !buckets[0].Total.Equal(decimal.NewFromInt(1800)) {
			t.Fatalf("unexpected Jane bucket: %+v", buckets[0])
		}
		if buckets[1].Key != entities.UnassignedConsultantLabel || !buckets[1].Total.Equal(decimal.NewFromInt(800)) {
			t.Fatalf("unexpected unassigned bucket: %+v", buckets[1])
		}
	})

	t.Run("revenue by tier and month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewDashboardUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(dashboardRecords(), nil).Times(2)

		tiers, err := uc.Breakdown(context.Background(), analytics.FilterSpec{}, DimensionTier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tiers) != 2 || tiers[1].Key != entities.TierPro || !tiers[1].Average.Equal(decimal.NewFromInt(12500)) {
			t.Fatalf("unexpected tier buckets: %+v", tiers)
		}

		months, err := uc.Breakdown(context.Background(), analytics.FilterSpec{}, DimensionMonth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(months) != 2 || months[0].Key != "2024-01" || months[1].Count != 2 {
			t.Fatalf("unexpected month buckets: %+v", months)
		}
	})
}
