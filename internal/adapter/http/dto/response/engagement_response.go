package response

import (
	"math"
	"time"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// EngagementResponse renders money as decimal strings and dates as
// YYYY-MM-DD. Rating is null until the engagement is rated.
type EngagementResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Type       string `json:"type"`
	Tier       string `json:"tier"`
	Consultant string `json:"consultant"`

	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date,omitempty"`
	DurationDays   int     `json:"duration_days"`
	PauseStartedAt *string `json:"pause_started_at"`
	PausedDays     int     `json:"paused_days"`
	ClosureSigned  bool    `json:"closure_signed"`

	ConsultingValue   string `json:"consulting_value"`
	BonusValue        string `json:"bonus_value"`
	CommissionPercent int    `json:"commission_percent"`
	CommissionValue   string `json:"commission_value"`

	Rating         *int    `json:"rating"`
	DeadlineMet    bool    `json:"deadline_met"`
	CompletionDate *string `json:"completion_date"`
	Bonused        bool    `json:"bonused"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEngagement(e entities.Engagement) EngagementResponse {
	return EngagementResponse{
		ID:                e.ID,
		ClientName:        e.ClientName,
		Type:              string(e.Type),
		Tier:              e.Tier,
		Consultant:        e.Consultant,
		StartDate:         formatDate(e.StartDate),
		EndDate:           formatDate(e.EndDate),
		DurationDays:      e.DurationDays,
		PauseStartedAt:    formatDatePtr(e.PauseStartedAt),
		PausedDays:        e.PausedDays,
		ClosureSigned:     e.ClosureSigned,
		ConsultingValue:   e.ConsultingValue.String(),
		BonusValue:        e.BonusValue.String(),
		CommissionPercent: e.CommissionPercent,
		CommissionValue:   e.CommissionValue.String(),
		Rating:            e.Rating.Ptr(),
		DeadlineMet:       e.DeadlineMet,
		CompletionDate:    formatDatePtr(e.CompletionDate),
		Bonused:           e.Bonused,
		Status:            string(e.Status),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromEngagements(list []entities.Engagement) []EngagementResponse {
	out := make([]EngagementResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEngagement(e))
	}
	return out
}

// StatsResponse carries the dashboard headline figures. Ratios are rounded
// to two decimals; revenue is an exact decimal string.
type StatsResponse struct {
	TotalProjects          int     `json:"total_projects"`
	ActiveProjects         int     `json:"active_projects"`
	CompletedProjects      int     `json:"completed_projects"`
	AverageRating          float64 `json:"average_rating"`
	TotalRevenue           string  `json:"total_revenue"`
	AverageProjectDuration float64 `json:"average_project_duration"`
	DeadlineComplianceRate float64 `json:"deadline_compliance_rate"`
}

func FromStats(s analytics.Stats) StatsResponse {
	return StatsResponse{
		TotalProjects:          s.TotalProjects,
		ActiveProjects:         s.ActiveProjects,
		CompletedProjects:      s.CompletedProjects,
		AverageRating:          round2(s.AverageRating),
		TotalRevenue:           s.TotalRevenue.String(),
		AverageProjectDuration: round2(s.AverageProjectDuration),
		DeadlineComplianceRate: round2(s.DeadlineComplianceRate),
	}
}

type BucketResponse struct {
	Key     string `json:"key"`
	Total   string `json:"total"`
	Count   int    `json:"count"`
	Average string `json:"average"`
}

type BreakdownResponse struct {
	Dimension string           `json:"dimension"`
	Buckets   []BucketResponse `json:"buckets"`
}

func FromBuckets(dimension string, buckets []analytics.GroupBucket) BreakdownResponse {
	out := BreakdownResponse{Dimension: dimension, Buckets: make([]BucketResponse, 0, len(buckets))}
	for _, b := range buckets {
		out.Buckets = append(out.Buckets, BucketResponse{
			Key:     b.Key,
			Total:   b.Total.String(),
			Count:   b.Count,
			Average: b.Average.StringFixed(2),
		})
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
