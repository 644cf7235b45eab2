package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"consultoria_xpto/internal/clock"
	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/domain/policy"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEngagementNotFound  = errors.New("engagement not found")
	ErrInvalidEngagementID = errors.New("invalid engagement id")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrEngagementClosed    = errors.New("engagement is closed")
)

// NewEngagement is the command for registering an engagement.
type NewEngagement struct {
	ClientName      string
	Type            entities.EngagementType
	Tier            string
	Consultant      string
	StartDate       time.Time
	EndDate         time.Time
	ConsultingValue decimal.Decimal
	BonusValue      decimal.Decimal
	ClosureSigned   bool
}

// EngagementChanges edits descriptive, scheduling and financial fields of an
// open engagement. Status and outcome fields only change through the
// lifecycle operations.
type EngagementChanges struct {
	ClientName      *string
	Type            *entities.EngagementType
	Tier            *string
	Consultant      *string
	StartDate       *time.Time
	EndDate         *time.Time
	ConsultingValue *decimal.Decimal
	BonusValue      *decimal.Decimal
	ClosureSigned   *bool
	Bonused         *bool
}

// CompleteEngagement is the command for closing an engagement as completed.
// CompletionDate defaults to now.
type CompleteEngagement struct {
	Rating         entities.Rating
	CompletionDate *time.Time
	Bonused        *bool
}

//go:generate mockgen -source=engagement_usecase.go -destination=../adapter/http/handlers/mocks/engagement_usecase_mock.go -package=mocks

// IEngagementUseCase exposes the engagement lifecycle.
//
// Lifecycle:
//   - Create => in_progress
//   - Pause / Resume => in_progress <-> paused
//   - Complete => completed, with deadline and commission computed together
//   - Cancel => cancelled, no commission

type IEngagementUseCase interface {
	List(ctx context.Context, filter analytics.FilterSpec) ([]entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	Create(ctx context.Context, cmd NewEngagement) (entities.Engagement, error)
	Update(ctx context.Context, id string, changes EngagementChanges) (entities.Engagement, error)
	Delete(ctx context.Context, id string) error
	Pause(ctx context.Context, id string) (entities.Engagement, error)
	Resume(ctx context.Context, id string) (entities.Engagement, error)
	Complete(ctx context.Context, id string, cmd CompleteEngagement) (entities.Engagement, error)
	Cancel(ctx context.Context, id string) (entities.Engagement, error)
}

type EngagementUseCase struct {
	repo     interfaces.IEngagementRepository
	deadline policy.DeadlinePolicy
	clock    clock.Clock
	metrics  interfaces.IEngagementMetrics
	log      *zap.Logger
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

type EngagementOption func(*EngagementUseCase)

func WithClock(c clock.Clock) EngagementOption {
	return func(u *EngagementUseCase) { u.clock = c }
}

func WithMetrics(m interfaces.IEngagementMetrics) EngagementOption {
	return func(u *EngagementUseCase) { u.metrics = m }
}

func WithLogger(l *zap.Logger) EngagementOption {
	return func(u *EngagementUseCase) { u.log = l }
}

func NewEngagementUseCase(repo interfaces.IEngagementRepository, deadline policy.DeadlinePolicy, opts ...EngagementOption) *EngagementUseCase {
	u := &EngagementUseCase{
		repo:     repo,
		deadline: deadline,
		clock:    clock.System(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *EngagementUseCase) List(ctx context.Context, filter analytics.FilterSpec) ([]entities.Engagement, error) {
	return listFiltered(ctx, u.repo, filter)
}

func (u *EngagementUseCase) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return e, nil
}

func (u *EngagementUseCase) Create(ctx context.Context, cmd NewEngagement) (entities.Engagement, error) {
	cmd.ClientName = strings.TrimSpace(cmd.ClientName)
	cmd.Tier = strings.TrimSpace(cmd.Tier)
	cmd.Consultant = strings.TrimSpace(cmd.Consultant)
	if err := validateDraft(cmd.ClientName, cmd.Type, cmd.Tier, cmd.StartDate, cmd.EndDate, cmd.ConsultingValue, cmd.BonusValue); err != nil {
		return entities.Engagement{}, err
	}

	now := u.clock.Now()
	e := entities.Engagement{
		ID:              uuid.NewString(),
		ClientName:      cmd.ClientName,
		Type:            cmd.Type,
		Tier:            cmd.Tier,
		Consultant:      cmd.Consultant,
		StartDate:       cmd.StartDate.UTC(),
		EndDate:         cmd.EndDate.UTC(),
		DurationDays:    entities.DaysBetween(cmd.StartDate, cmd.EndDate),
		ClosureSigned:   cmd.ClosureSigned,
		ConsultingValue: cmd.ConsultingValue,
		BonusValue:      cmd.BonusValue,
		CommissionValue: decimal.Zero,
		Rating:          entities.NoRating(),
		Status:          entities.EngagementStatusInProgress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Error("[engagement][usecase] create failed", zap.String("client", e.ClientName), zap.Error(err))
		return entities.Engagement{}, err
	}
	u.log.Info("[engagement][usecase] created", zap.String("engagement_id", created.ID), zap.String("tier", created.Tier))
	return created, nil
}

func (u *EngagementUseCase) Update(ctx context.Context, id string, changes EngagementChanges) (entities.Engagement, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if current.Status.IsTerminal() {
		return entities.Engagement{}, ErrEngagementClosed
	}

	patch := entities.EngagementPatch{
		ClientName:      trimmed(changes.ClientName),
		Type:            changes.Type,
		Tier:            trimmed(changes.Tier),
		Consultant:      trimmed(changes.Consultant),
		StartDate:       utc(changes.StartDate),
		EndDate:         utc(changes.EndDate),
		ConsultingValue: changes.ConsultingValue,
		BonusValue:      changes.BonusValue,
		ClosureSigned:   changes.ClosureSigned,
		Bonused:         changes.Bonused,
		UpdatedAt:       u.clock.Now(),
	}

	next := patch.Apply(current)
	if err := validateDraft(next.ClientName, next.Type, next.Tier, next.StartDate, next.EndDate, next.ConsultingValue, next.BonusValue); err != nil {
		return entities.Engagement{}, err
	}
	if changes.StartDate != nil || changes.EndDate != nil {
		duration := entities.DaysBetween(next.StartDate, next.EndDate)
		patch.DurationDays = &duration
	}

	return u.persist(ctx, current.ID, patch)
}

func (u *EngagementUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		u.log.Error("[engagement][usecase] delete failed", zap.String("engagement_id", current.ID), zap.Error(err))
		return err
	}
	u.log.Info("[engagement][usecase] deleted", zap.String("engagement_id", current.ID))
	return nil
}

func (u *EngagementUseCase) Pause(ctx context.Context, id string) (entities.Engagement, error) {
	current, err := u.transitionFrom(ctx, id, entities.EngagementStatusPaused)
	if err != nil {
		return entities.Engagement{}, err
	}

	now := u.clock.Now()
	status := entities.EngagementStatusPaused
	return u.persist(ctx, current.ID, entities.EngagementPatch{
		Status:         &status,
		PauseStartedAt: &now,
		UpdatedAt:      now,
	})
}

func (u *EngagementUseCase) Resume(ctx context.Context, id string) (entities.Engagement, error) {
	current, err := u.transitionFrom(ctx, id, entities.EngagementStatusInProgress)
	if err != nil {
		return entities.Engagement{}, err
	}

	now := u.clock.Now()
	status := entities.EngagementStatusInProgress
	paused := current.PausedDays + pausedSince(current, now)
	return u.persist(ctx, current.ID, entities.EngagementPatch{
		Status:              &status,
		PausedDays:          &paused,
		ClearPauseStartedAt: true,
		UpdatedAt:           now,
	})
}

// Complete evaluates the deadline, computes the commission and persists both
// with the rating in one repository write.
func (u *EngagementUseCase) Complete(ctx context.Context, id string, cmd CompleteEngagement) (entities.Engagement, error) {
	current, err := u.transitionFrom(ctx, id, entities.EngagementStatusCompleted)
	if err != nil {
		return entities.Engagement{}, err
	}

	now := u.clock.Now()
	completedAt := now
	if cmd.CompletionDate != nil {
		completedAt = cmd.CompletionDate.UTC()
	}
	if completedAt.Before(current.StartDate) {
		return entities.Engagement{}, entities.NewValidationError("completion_date", "must not be before start_date")
	}

	paused := current.PausedDays + pausedSince(current, completedAt)
	duration := entities.DaysBetween(current.StartDate, completedAt) - paused
	if duration < 0 {
		duration = 0
	}

	deadlineMet, err := u.deadline.Evaluate(current.Tier, duration)
	if err != nil {
		return entities.Engagement{}, err
	}
	commission, err := policy.CalculateCommission(cmd.Rating, deadlineMet, current.ConsultingValue)
	if err != nil {
		return entities.Engagement{}, err
	}

	status := entities.EngagementStatusCompleted
	rating := cmd.Rating
	patch := entities.EngagementPatch{
		Status:              &status,
		Rating:              &rating,
		DurationDays:        &duration,
		PausedDays:          &paused,
		ClearPauseStartedAt: true,
		DeadlineMet:         &deadlineMet,
		CommissionPercent:   &commission.Percent,
		CommissionValue:     &commission.Value,
		CompletionDate:      &completedAt,
		Bonused:             cmd.Bonused,
		UpdatedAt:           now,
	}

	updated, err := u.persist(ctx, current.ID, patch)
	if err != nil {
		return entities.Engagement{}, err
	}
	u.log.Info("[engagement][usecase] completed",
		zap.String("engagement_id", updated.ID),
		zap.Int("duration_days", duration),
		zap.Bool("deadline_met", deadlineMet),
		zap.Int("commission_percent", commission.Percent),
		zap.String("commission_value", commission.Value.String()),
	)
	if u.metrics != nil {
		u.metrics.ObserveCompletion(updated)
	}
	return updated, nil
}

func (u *EngagementUseCase) Cancel(ctx context.Context, id string) (entities.Engagement, error) {
	current, err := u.transitionFrom(ctx, id, entities.EngagementStatusCancelled)
	if err != nil {
		return entities.Engagement{}, err
	}

	now := u.clock.Now()
	status := entities.EngagementStatusCancelled
	percent := entities.CommissionPercentNone
	value := decimal.Zero
	deadlineMet := false
	updated, err := u.persist(ctx, current.ID, entities.EngagementPatch{
		Status:              &status,
		CommissionPercent:   &percent,
		CommissionValue:     &value,
		DeadlineMet:         &deadlineMet,
		ClearPauseStartedAt: true,
		UpdatedAt:           now,
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if u.metrics != nil {
		u.metrics.ObserveCancellation(updated)
	}
	return updated, nil
}

func (u *EngagementUseCase) transitionFrom(ctx context.Context, id string, next entities.EngagementStatus) (entities.Engagement, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		u.log.Warn("[engagement][usecase] transition rejected",
			zap.String("engagement_id", current.ID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(next)),
		)
		return entities.Engagement{}, ErrInvalidTransition
	}
	return current, nil
}

func (u *EngagementUseCase) persist(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		u.log.Error("[engagement][usecase] update failed", zap.String("engagement_id", id), zap.Error(err))
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return updated, nil
}

func pausedSince(e entities.Engagement, at time.Time) int {
	if e.Status != entities.EngagementStatusPaused || e.PauseStartedAt == nil {
		return 0
	}
	return entities.DaysBetween(*e.PauseStartedAt, at)
}

func validateDraft(client string, typ entities.EngagementType, tier string, start, end time.Time, consulting, bonus decimal.Decimal) error {
	switch {
	case client == "":
		return entities.NewValidationError("client_name", "is required")
	case !typ.Valid():
		return entities.NewValidationError("type", "must be consulting or upsell")
	case tier == "":
		return entities.NewValidationError("tier", "is required")
	case start.IsZero():
		return entities.NewValidationError("start_date", "is required")
	case !end.IsZero() && end.Before(start):
		return entities.NewValidationError("end_date", "must not be before start_date")
	case consulting.IsNegative():
		return entities.NewValidationError("consulting_value", "must not be negative")
	case bonus.IsNegative():
		return entities.NewValidationError("bonus_value", "must not be negative")
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
