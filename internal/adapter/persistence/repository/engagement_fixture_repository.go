package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrEngagementExists = errors.New("engagement already exists")

// EngagementFixtureRepository keeps engagements in memory, seeded with the
// demonstration dataset. It backs DATA_SOURCE=fixture and the degraded mode
// of FallbackRepository.
type EngagementFixtureRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Engagement
}

var _ interfaces.IEngagementRepository = (*EngagementFixtureRepository)(nil)

func NewEngagementFixtureRepository(seed []entities.Engagement) *EngagementFixtureRepository {
	items := make(map[string]entities.Engagement, len(seed))
	for _, e := range seed {
		items[e.ID] = e
	}
	return &EngagementFixtureRepository{items: items}
}

// List returns every stored engagement ordered by creation time. Filtering
// is left to the caller, like the live repositories do for dates.
func (r *EngagementFixtureRepository) List(_ context.Context, _ analytics.FilterSpec) ([]entities.Engagement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Engagement, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *EngagementFixtureRepository) GetByID(_ context.Context, id string) (entities.Engagement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *EngagementFixtureRepository) Create(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return entities.Engagement{}, ErrEngagementExists
	}
	r.items[e.ID] = e
	return e, nil
}

func (r *EngagementFixtureRepository) Update(_ context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[id]
	if !ok {
		return entities.Engagement{}, nil
	}
	if patch.UpdatedAt.IsZero() {
		patch.UpdatedAt = timeNow().UTC()
	}
	next := patch.Apply(current)
	r.items[id] = next
	return next, nil
}

func (r *EngagementFixtureRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// FixtureEngagements is the demonstration dataset. It covers every status,
// type and known tier, plus one unknown tier and one unassigned engagement.
func FixtureEngagements() []entities.Engagement {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	ptr := func(t time.Time) *time.Time { return &t }
	money := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	rating := func(v int) entities.Rating {
		r, _ := entities.NewRating(v)
		return r
	}
	completed := func(e entities.Engagement, r entities.Rating, completion time.Time, met bool, percent int) entities.Engagement {
		e.Status = entities.EngagementStatusCompleted
		e.Rating = r
		e.CompletionDate = ptr(completion)
		e.DurationDays = entities.DaysBetween(e.StartDate, completion) - e.PausedDays
		e.DeadlineMet = met
		e.CommissionPercent = percent
		e.CommissionValue = e.ConsultingValue.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
		e.UpdatedAt = completion
		return e
	}
	base := func(id, client, consultant, tier string, typ entities.EngagementType, start time.Time, value int64) entities.Engagement {
		return entities.Engagement{
			ID:              id,
			ClientName:      client,
			Type:            typ,
			Tier:            tier,
			Consultant:      consultant,
			StartDate:       start,
			EndDate:         start.AddDate(0, 0, 30),
			DurationDays:    30,
			ConsultingValue: money(value),
			BonusValue:      decimal.Zero,
			CommissionValue: decimal.Zero,
			Status:          entities.EngagementStatusInProgress,
			CreatedAt:       start,
			UpdatedAt:       start,
		}
	}

	return []entities.Engagement{
		completed(base("fx-001", "Padaria Aurora", "Ana Souza", entities.TierBasic, entities.EngagementTypeConsulting, d(2024, 1, 8), 3000),
			rating(5), d(2024, 1, 18), true, entities.CommissionPercentOnTime),
		completed(base("fx-002", "Mercado Central", "Bruno Lima", entities.TierStarter, entities.EngagementTypeConsulting, d(2024, 1, 15), 6000),
			rating(4), d(2024, 2, 10), false, entities.CommissionPercentLate),
		completed(base("fx-003", "Clinica Vida", "Ana Souza", entities.TierPro, entities.EngagementTypeUpsell, d(2024, 2, 1), 15000),
			rating(3), d(2024, 3, 1), true, entities.CommissionPercentNone),
		completed(base("fx-004", "Grupo Horizonte", "Carla Dias", entities.TierEnterprise, entities.EngagementTypeConsulting, d(2024, 2, 12), 40000),
			rating(5), d(2024, 4, 5), true, entities.CommissionPercentOnTime),
		func() entities.Engagement {
			e := base("fx-005", "Loja Estrela", "Bruno Lima", entities.TierPro, entities.EngagementTypeConsulting, d(2024, 3, 4), 12000)
			e.Status = entities.EngagementStatusPaused
			e.PauseStartedAt = ptr(d(2024, 3, 20))
			e.PausedDays = 2
			return e
		}(),
		base("fx-006", "Oficina Rapida", "", entities.TierStarter, entities.EngagementTypeUpsell, d(2024, 3, 18), 4500),
		func() entities.Engagement {
			e := base("fx-007", "Escola Nova", "Carla Dias", entities.TierBasic, entities.EngagementTypeConsulting, d(2024, 4, 2), 2500)
			e.Status = entities.EngagementStatusCancelled
			e.UpdatedAt = d(2024, 4, 9)
			return e
		}(),
		base("fx-008", "Studio Pixel", "Ana Souza", "Custom", entities.EngagementTypeConsulting, d(2024, 4, 15), 8000),
	}
}
