package analytics

import (
	"testing"

	"consultoria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(t *testing.T, v int) entities.Rating {
	t.Helper()
	r, err := entities.NewRating(v)
	require.NoError(t, err)
	return r
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, 0, s.TotalProjects)
	assert.Equal(t, 0, s.ActiveProjects)
	assert.Equal(t, 0, s.CompletedProjects)
	assert.Equal(t, 0.0, s.AverageRating)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.Equal(t, 0.0, s.AverageProjectDuration)
	assert.Equal(t, 0.0, s.DeadlineComplianceRate)
}

func TestAggregate_SparseRecords(t *testing.T) {
	records := []entities.Engagement{
		{Status: entities.EngagementStatusCompleted, Rating: rating(t, 5), DurationDays: 20, ConsultingValue: decimal.NewFromInt(1000)},
		{Status: entities.EngagementStatusCompleted, DurationDays: 10, ConsultingValue: decimal.NewFromInt(500)},
		{Status: entities.EngagementStatusInProgress, ConsultingValue: decimal.NewFromInt(2000)},
	}

	s := Aggregate(records)
	assert.Equal(t, 3, s.TotalProjects)
	assert.Equal(t, 2, s.CompletedProjects)
	assert.Equal(t, 1, s.ActiveProjects)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(3500)), "got %s", s.TotalRevenue)
	assert.Equal(t, 5.0, s.AverageRating, "unrated records are not averaged as zero")
	assert.Equal(t, 15.0, s.AverageProjectDuration)
	assert.Equal(t, 0.0, s.DeadlineComplianceRate)
}

func TestAggregate_ComplianceAndDurationRules(t *testing.T) {
	records := []entities.Engagement{
		{Status: entities.EngagementStatusCompleted, DeadlineMet: true, DurationDays: 0, Rating: rating(t, 4)},
		{Status: entities.EngagementStatusCompleted, DeadlineMet: true, DurationDays: 30, Rating: rating(t, 2)},
		{Status: entities.EngagementStatusCompleted, DeadlineMet: false, DurationDays: 50},
		{Status: entities.EngagementStatusCompleted, DeadlineMet: false, DurationDays: 10},
		{Status: entities.EngagementStatusPaused, DeadlineMet: true, DurationDays: 99, Rating: rating(t, 1)},
		{Status: entities.EngagementStatusCancelled, ConsultingValue: decimal.RequireFromString("10.50")},
	}

	s := Aggregate(records)
	assert.Equal(t, 4, s.CompletedProjects)
	assert.Equal(t, 0, s.ActiveProjects, "paused engagements are not active")
	assert.Equal(t, 50.0, s.DeadlineComplianceRate)
	assert.Equal(t, 30.0, s.AverageProjectDuration, "zero durations are skipped")
	assert.Equal(t, 3.0, s.AverageRating)
	assert.Equal(t, "10.5", s.TotalRevenue.String(), "revenue counts every status")
}

func TestAggregateBy_Consultant(t *testing.T) {
	records := []entities.Engagement{
		{Consultant: "Jane", CommissionValue: decimal.NewFromInt(800)},
		{Consultant: "Jane", CommissionValue: decimal.NewFromInt(1800)},
		{Consultant: "Bob", CommissionValue: decimal.NewFromInt(100)},
		{CommissionValue: decimal.NewFromInt(1)},
	}

	buckets := AggregateBy(records, ByConsultant, CommissionValue)
	require.Len(t, buckets, 3)

	jane := buckets["Jane"]
	assert.Equal(t, 2, jane.Count)
	assert.True(t, jane.Total.Equal(decimal.NewFromInt(2600)))
	assert.True(t, jane.Average.Equal(decimal.NewFromInt(1300)))

	assert.Equal(t, 1, buckets[entities.UnassignedConsultantLabel].Count)

	sorted := SortedBuckets(buckets)
	assert.Equal(t, []string{"Bob", "Jane", "unassigned"}, []string{sorted[0].Key, sorted[1].Key, sorted[2].Key})
}

func TestAggregateBy_AverageRoundsToCents(t *testing.T) {
	records := []entities.Engagement{
		{Tier: entities.TierPro, ConsultingValue: decimal.NewFromInt(100)},
		{Tier: entities.TierPro, ConsultingValue: decimal.NewFromInt(100)},
		{Tier: entities.TierPro, ConsultingValue: decimal.NewFromInt(100)},
		{Tier: entities.TierPro, ConsultingValue: decimal.NewFromInt(1)},
	}
	b := AggregateBy(records, ByTier, ConsultingValue)[entities.TierPro]
	assert.Equal(t, "75.25", b.Average.String())

	odd := AggregateBy(records[:1], ByTier, func(entities.Engagement) decimal.Decimal { return decimal.NewFromInt(10) })
	assert.Equal(t, "10", odd[entities.TierPro].Average.String())
}

func TestAggregateBy_Empty(t *testing.T) {
	assert.Empty(t, AggregateBy(nil, ByStatus, ConsultingValue))
	assert.Empty(t, SortedBuckets(nil))
}

func TestByStartMonth(t *testing.T) {
	e := entities.Engagement{StartDate: date(2024, 3, 15)}
	assert.Equal(t, "2024-03", ByStartMonth(e))
}
