package repository

import (
	"context"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// FallbackRepository serves List from a fixture repository when the live
// repository fails. Every other operation goes to the live repository.
type FallbackRepository struct {
	live    interfaces.IEngagementRepository
	fixture interfaces.IEngagementRepository
	log     *zap.Logger
}

var _ interfaces.IEngagementRepository = (*FallbackRepository)(nil)

func NewFallbackRepository(live, fixture interfaces.IEngagementRepository, log *zap.Logger) *FallbackRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackRepository{live: live, fixture: fixture, log: log}
}

func (r *FallbackRepository) List(ctx context.Context, filter analytics.FilterSpec) ([]entities.Engagement, error) {
	items, err := r.live.List(ctx, filter)
	if err == nil {
		return items, nil
	}
	r.log.Warn("[engagement][repository] live list failed, serving fixture data", zap.Error(err))
	return r.fixture.List(ctx, filter)
}

func (r *FallbackRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	return r.live.GetByID(ctx, id)
}

func (r *FallbackRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	return r.live.Create(ctx, e)
}

func (r *FallbackRepository) Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	return r.live.Update(ctx, id, patch)
}

func (r *FallbackRepository) Delete(ctx context.Context, id string) error {
	return r.live.Delete(ctx, id)
}
