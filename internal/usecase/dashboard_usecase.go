package usecase

import (
	"context"
	"errors"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidDimension = errors.New("invalid breakdown dimension")

// Dimension names a dashboard breakdown.
type Dimension string

const (
	DimensionConsultant Dimension = "consultant"
	DimensionTier       Dimension = "tier"
	DimensionType       Dimension = "type"
	DimensionStatus     Dimension = "status"
	DimensionMonth      Dimension = "month"
)

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/dashboard_usecase_mock.go -package=mocks

// IDashboardUseCase computes dashboard figures over filtered engagements.
// Nothing is mutated, so a cancelled request leaves no partial state.
type IDashboardUseCase interface {
	Stats(ctx context.Context, filter analytics.FilterSpec) (analytics.Stats, error)
	Breakdown(ctx context.Context, filter analytics.FilterSpec, dim Dimension) ([]analytics.GroupBucket, error)
}

type DashboardUseCase struct {
	repo interfaces.IEngagementRepository
	log  *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IEngagementRepository, log *zap.Logger) *DashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUseCase{repo: repo, log: log}
}

func (u *DashboardUseCase) Stats(ctx context.Context, filter analytics.FilterSpec) (analytics.Stats, error) {
	records, err := listFiltered(ctx, u.repo, filter)
	if err != nil {
		u.log.Error("[dashboard][usecase] list failed", zap.Error(err))
		return analytics.Stats{}, err
	}
	return analytics.Aggregate(records), nil
}

// Breakdown groups the filtered engagements by dim.
//
//   - consultant: commission value of completed engagements per consultant
//   - tier, type, status: consulting value per key
//   - month: consulting value per start month (YYYY-MM)
func (u *DashboardUseCase) Breakdown(ctx context.Context, filter analytics.FilterSpec, dim Dimension) ([]analytics.GroupBucket, error) {
	key, value, onlyCompleted, ok := breakdownFuncs(dim)
	if !ok {
		return nil, ErrInvalidDimension
	}

	records, err := listFiltered(ctx, u.repo, filter)
	if err != nil {
		u.log.Error("[dashboard][usecase] list failed", zap.String("dimension", string(dim)), zap.Error(err))
		return nil, err
	}
	if onlyCompleted {
		records = analytics.Filter(records, analytics.FilterSpec{Status: string(entities.EngagementStatusCompleted)})
	}
	return analytics.SortedBuckets(analytics.AggregateBy(records, key, value)), nil
}

func breakdownFuncs(dim Dimension) (analytics.KeyFunc, analytics.ValueFunc, bool, bool) {
	switch dim {
	case DimensionConsultant:
		return analytics.ByConsultant, analytics.CommissionValue, true, true
	case DimensionTier:
		return analytics.ByTier, analytics.ConsultingValue, false, true
	case DimensionType:
		return analytics.ByType, analytics.ConsultingValue, false, true
	case DimensionStatus:
		return analytics.ByStatus, analytics.ConsultingValue, false, true
	case DimensionMonth:
		return analytics.ByStartMonth, analytics.ConsultingValue, false, true
	}
	return nil, nil, false, false
}

func listFiltered(ctx context.Context, repo interfaces.IEngagementRepository, filter analytics.FilterSpec) ([]entities.Engagement, error) {
	records, err := repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return analytics.Filter(records, filter), nil
}
