package repository

import (
	"context"
	"errors"
	"time"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type engagementModel struct {
	ID         string `gorm:"primaryKey;type:varchar(64)"`
	ClientName string `gorm:"not null"`
	Type       string `gorm:"type:varchar(32);not null;index"`
	Tier       string `gorm:"type:varchar(32);not null"`
	Consultant string `gorm:"index"`

	StartDate      time.Time
	EndDate        time.Time
	DurationDays   int
	PauseStartedAt *time.Time
	PausedDays     int
	ClosureSigned  bool

	ConsultingValue   decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	BonusValue        decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	CommissionPercent int
	CommissionValue   decimal.Decimal `gorm:"type:numeric(18,4);not null"`

	Rating         *int
	DeadlineMet    bool
	CompletionDate *time.Time
	Bonused        bool

	Status    string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (engagementModel) TableName() string {
	return "engagements"
}

// MigrateEngagements creates or updates the engagements table.
func MigrateEngagements(db *gorm.DB) error {
	return db.AutoMigrate(&engagementModel{})
}

// EngagementGormRepository persists Engagement entities in a SQL database.
type EngagementGormRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ interfaces.IEngagementRepository = (*EngagementGormRepository)(nil)

func NewEngagementGormRepository(db *gorm.DB, log *zap.Logger) *EngagementGormRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &EngagementGormRepository{db: db, log: log}
}

func (r *EngagementGormRepository) List(ctx context.Context, filter analytics.FilterSpec) ([]entities.Engagement, error) {
	stmt := r.db.WithContext(ctx).Model(&engagementModel{})
	if !analytics.IsUnconstrained(filter.Consultant) {
		stmt = stmt.Where("consultant = ?", filter.Consultant)
	}
	if !analytics.IsUnconstrained(filter.Type) {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	if !analytics.IsUnconstrained(filter.Status) {
		stmt = stmt.Where("status = ?", filter.Status)
	}

	var rows []engagementModel
	if err := stmt.Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		r.log.Error("[engagement][gorm] list failed", zap.Error(err))
		return nil, err
	}

	out := make([]entities.Engagement, 0, len(rows))
	for _, row := range rows {
		e, err := fromEngagementModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *EngagementGormRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *EngagementGormRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	row := toEngagementModel(e)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Engagement{}, err
	}
	return e, nil
}

// Update reads, patches and saves the row inside one transaction.
func (r *EngagementGormRepository) Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error) {
	var updated entities.Engagement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.get(tx, id)
		if err != nil || current.ID == "" {
			return err
		}
		if patch.UpdatedAt.IsZero() {
			patch.UpdatedAt = timeNow().UTC()
		}
		next := patch.Apply(current)
		row := toEngagementModel(next)
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	return updated, nil
}

func (r *EngagementGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&engagementModel{}, "id = ?", id).Error
}

func (r *EngagementGormRepository) get(db *gorm.DB, id string) (entities.Engagement, error) {
	var row engagementModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Engagement{}, nil
	}
	if err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementModel(row)
}

func toEngagementModel(e entities.Engagement) engagementModel {
	return engagementModel{
		ID:                e.ID,
		ClientName:        e.ClientName,
		Type:              string(e.Type),
		Tier:              e.Tier,
		Consultant:        e.Consultant,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		DurationDays:      e.DurationDays,
		PauseStartedAt:    e.PauseStartedAt,
		PausedDays:        e.PausedDays,
		ClosureSigned:     e.ClosureSigned,
		ConsultingValue:   e.ConsultingValue,
		BonusValue:        e.BonusValue,
		CommissionPercent: e.CommissionPercent,
		CommissionValue:   e.CommissionValue,
		Rating:            e.Rating.Ptr(),
		DeadlineMet:       e.DeadlineMet,
		CompletionDate:    e.CompletionDate,
		Bonused:           e.Bonused,
		Status:            string(e.Status),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func fromEngagementModel(m engagementModel) (entities.Engagement, error) {
	rating, err := entities.RatingFromPtr(m.Rating)
	if err != nil {
		return entities.Engagement{}, err
	}
	return entities.Engagement{
		ID:                m.ID,
		ClientName:        m.ClientName,
		Type:              entities.EngagementType(m.Type),
		Tier:              m.Tier,
		Consultant:        m.Consultant,
		StartDate:         m.StartDate.UTC(),
		EndDate:           m.EndDate.UTC(),
		DurationDays:      m.DurationDays,
		PauseStartedAt:    utcPtr(m.PauseStartedAt),
		PausedDays:        m.PausedDays,
		ClosureSigned:     m.ClosureSigned,
		ConsultingValue:   m.ConsultingValue,
		BonusValue:        m.BonusValue,
		CommissionPercent: m.CommissionPercent,
		CommissionValue:   m.CommissionValue,
		Rating:            rating,
		DeadlineMet:       m.DeadlineMet,
		CompletionDate:    utcPtr(m.CompletionDate),
		Bonused:           m.Bonused,
		Status:            entities.EngagementStatus(m.Status),
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
