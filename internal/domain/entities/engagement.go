package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EngagementStatus represents the lifecycle of a client engagement.
//
// Domain notes:
//   - Engagements are created in_progress.
//   - in_progress <-> paused while work is suspended.
//   - completed and cancelled are terminal; nothing leaves them.

type EngagementStatus string

const (
	EngagementStatusInProgress EngagementStatus = "in_progress"
	EngagementStatusPaused     EngagementStatus = "paused"
	EngagementStatusCompleted  EngagementStatus = "completed"
	EngagementStatusCancelled  EngagementStatus = "cancelled"
)

func (s EngagementStatus) Valid() bool {
	switch s {
	case EngagementStatusInProgress, EngagementStatusPaused, EngagementStatusCompleted, EngagementStatusCancelled:
		return true
	}
	return false
}

func (s EngagementStatus) IsTerminal() bool {
	return s == EngagementStatusCompleted || s == EngagementStatusCancelled
}

var allowedTransitions = map[EngagementStatus][]EngagementStatus{
	EngagementStatusInProgress: {EngagementStatusPaused, EngagementStatusCompleted, EngagementStatusCancelled},
	EngagementStatusPaused:     {EngagementStatusInProgress, EngagementStatusCompleted, EngagementStatusCancelled},
}

// CanTransitionTo reports whether the state machine allows s -> next.
func (s EngagementStatus) CanTransitionTo(next EngagementStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type EngagementType string

const (
	EngagementTypeConsulting EngagementType = "consulting"
	EngagementTypeUpsell     EngagementType = "upsell"
)

func (t EngagementType) Valid() bool {
	return t == EngagementTypeConsulting || t == EngagementTypeUpsell
}

// Size tiers known by the deadline policy. Tier is an open string, other
// values are accepted and fall back to the policy default.
const (
	TierBasic      = "Basic"
	TierStarter    = "Starter"
	TierPro        = "Pro"
	TierEnterprise = "Enterprise"
)

// Commission percentages an engagement can carry.
const (
	CommissionPercentNone     = 0
	CommissionPercentLate     = 8
	CommissionPercentOnTime   = 12
	UnassignedConsultantLabel = "unassigned"
)

// Engagement is a consulting or upsell project tracked from creation to
// completion or cancellation.
//
// Monetary representation:
//   - ConsultingValue, BonusValue and CommissionValue are exact decimals.
//   - CommissionValue is always ConsultingValue * CommissionPercent / 100.
//
// Outcome fields (Rating, DeadlineMet, Commission*, CompletionDate) are only
// meaningful once Status is completed.
type Engagement struct {
	ID         string         `json:"id"`
	ClientName string         `json:"client_name"`
	Type       EngagementType `json:"type"`
	Tier       string         `json:"tier"`
	Consultant string         `json:"consultant,omitempty"`

	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	DurationDays   int        `json:"duration_days"`
	PauseStartedAt *time.Time `json:"pause_started_at,omitempty"`
	PausedDays     int        `json:"paused_days"`
	ClosureSigned  bool       `json:"closure_signed"`

	ConsultingValue   decimal.Decimal `json:"consulting_value"`
	BonusValue        decimal.Decimal `json:"bonus_value"`
	CommissionPercent int             `json:"commission_percent"`
	CommissionValue   decimal.Decimal `json:"commission_value"`

	Rating         Rating     `json:"rating"`
	DeadlineMet    bool       `json:"deadline_met"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Bonused        bool       `json:"bonused"`

	Status    EngagementStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// HasConsultant reports whether a consultant is assigned.
func (e Engagement) HasConsultant() bool {
	return e.Consultant != ""
}

// ConsultantLabel returns the consultant name or the unassigned label.
func (e Engagement) ConsultantLabel() string {
	if !e.HasConsultant() {
		return UnassignedConsultantLabel
	}
	return e.Consultant
}

// Validate checks the data-model invariants of a stored engagement.
func (e Engagement) Validate() error {
	if e.DurationDays < 0 {
		return NewValidationError("duration_days", "must not be negative")
	}
	if e.PausedDays < 0 {
		return NewValidationError("paused_days", "must not be negative")
	}
	if e.ConsultingValue.IsNegative() {
		return NewValidationError("consulting_value", "must not be negative")
	}
	if e.BonusValue.IsNegative() {
		return NewValidationError("bonus_value", "must not be negative")
	}
	switch e.CommissionPercent {
	case CommissionPercentNone, CommissionPercentLate, CommissionPercentOnTime:
	default:
		return NewValidationError("commission_percent", "must be one of 0, 8, 12")
	}
	if !e.CommissionValue.Equal(e.ConsultingValue.Mul(decimal.NewFromInt(int64(e.CommissionPercent))).Div(decimal.NewFromInt(100))) {
		return NewValidationError("commission_value", "must equal consulting_value * commission_percent / 100")
	}
	if !e.Status.Valid() {
		return NewValidationError("status", "unknown status "+string(e.Status))
	}
	if e.Status != EngagementStatusCompleted && e.CommissionPercent != CommissionPercentNone {
		return NewValidationError("commission_percent", "only completed engagements carry commission")
	}
	return nil
}

// EngagementPatch is a partial update. Nil fields are left untouched.
//
// ClearPauseStartedAt removes the pause timestamp; it wins over PauseStartedAt.
type EngagementPatch struct {
	ClientName *string
	Type       *EngagementType
	Tier       *string
	Consultant *string

	StartDate           *time.Time
	EndDate             *time.Time
	DurationDays        *int
	PauseStartedAt      *time.Time
	ClearPauseStartedAt bool
	PausedDays          *int
	ClosureSigned       *bool

	ConsultingValue   *decimal.Decimal
	BonusValue        *decimal.Decimal
	CommissionPercent *int
	CommissionValue   *decimal.Decimal

	Rating         *Rating
	DeadlineMet    *bool
	CompletionDate *time.Time
	Bonused        *bool

	Status    *EngagementStatus
	UpdatedAt time.Time
}

// Apply returns e with every non-nil patch field written over it.
func (p EngagementPatch) Apply(e Engagement) Engagement {
	if p.ClientName != nil {
		e.ClientName = *p.ClientName
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Tier != nil {
		e.Tier = *p.Tier
	}
	if p.Consultant != nil {
		e.Consultant = *p.Consultant
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.DurationDays != nil {
		e.DurationDays = *p.DurationDays
	}
	if p.PauseStartedAt != nil {
		t := *p.PauseStartedAt
		e.PauseStartedAt = &t
	}
	if p.ClearPauseStartedAt {
		e.PauseStartedAt = nil
	}
	if p.PausedDays != nil {
		e.PausedDays = *p.PausedDays
	}
	if p.ClosureSigned != nil {
		e.ClosureSigned = *p.ClosureSigned
	}
	if p.ConsultingValue != nil {
		e.ConsultingValue = *p.ConsultingValue
	}
	if p.BonusValue != nil {
		e.BonusValue = *p.BonusValue
	}
	if p.CommissionPercent != nil {
		e.CommissionPercent = *p.CommissionPercent
	}
	if p.CommissionValue != nil {
		e.CommissionValue = *p.CommissionValue
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	if p.DeadlineMet != nil {
		e.DeadlineMet = *p.DeadlineMet
	}
	if p.CompletionDate != nil {
		t := *p.CompletionDate
		e.CompletionDate = &t
	}
	if p.Bonused != nil {
		e.Bonused = *p.Bonused
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if !p.UpdatedAt.IsZero() {
		e.UpdatedAt = p.UpdatedAt
	}
	return e
}

// DaysBetween returns the whole days elapsed from start to end, 0 when end
// is before start.
func DaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
