package analytics

import (
	"sort"

	"consultoria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Stats summarises a collection of engagements for the dashboard.
type Stats struct {
	TotalProjects          int             `json:"total_projects"`
	ActiveProjects         int             `json:"active_projects"`
	CompletedProjects      int             `json:"completed_projects"`
	AverageRating          float64         `json:"average_rating"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	AverageProjectDuration float64         `json:"average_project_duration"`
	DeadlineComplianceRate float64         `json:"deadline_compliance_rate"`
}

// Aggregate computes Stats over records.
//
//   - TotalRevenue sums consulting value across every status.
//   - AverageRating only counts completed records that have a rating.
//   - AverageProjectDuration only counts completed records with duration > 0.
//   - DeadlineComplianceRate is deadline-met completed / completed * 100.
//
// Empty subsets yield 0, never NaN.
func Aggregate(records []entities.Engagement) Stats {
	stats := Stats{TotalProjects: len(records), TotalRevenue: decimal.Zero}

	var (
		ratingSum, ratingCount     int
		durationSum, durationCount int
		deadlineMet                int
	)
	for _, e := range records {
		stats.TotalRevenue = stats.TotalRevenue.Add(e.ConsultingValue)

		switch e.Status {
		case entities.EngagementStatusInProgress:
			stats.ActiveProjects++
		case entities.EngagementStatusCompleted:
			stats.CompletedProjects++
			if r, ok := e.Rating.Value(); ok {
				ratingSum += r
				ratingCount++
			}
			if e.DurationDays > 0 {
				durationSum += e.DurationDays
				durationCount++
			}
			if e.DeadlineMet {
				deadlineMet++
			}
		}
	}

	stats.AverageRating = safeDiv(float64(ratingSum), ratingCount)
	stats.AverageProjectDuration = safeDiv(float64(durationSum), durationCount)
	stats.DeadlineComplianceRate = safeDiv(float64(deadlineMet)*100, stats.CompletedProjects)
	return stats
}

func safeDiv(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// KeyFunc partitions engagements into groups.
type KeyFunc func(entities.Engagement) string

// ValueFunc extracts the amount summed inside a group.
type ValueFunc func(entities.Engagement) decimal.Decimal

// GroupBucket is the per-key aggregate produced by AggregateBy.
type GroupBucket struct {
	Key     string          `json:"key"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// AggregateBy partitions records by key and sums value inside each
// partition. Average is Total / Count rounded to cents.
func AggregateBy(records []entities.Engagement, key KeyFunc, value ValueFunc) map[string]GroupBucket {
	buckets := make(map[string]GroupBucket)
	for _, e := range records {
		k := key(e)
		b, ok := buckets[k]
		if !ok {
			b = GroupBucket{Key: k, Total: decimal.Zero}
		}
		b.Total = b.Total.Add(value(e))
		b.Count++
		buckets[k] = b
	}
	for k, b := range buckets {
		b.Average = average(b.Total, b.Count)
		buckets[k] = b
	}
	return buckets
}

// SortedBuckets returns the buckets ordered by key.
func SortedBuckets(buckets map[string]GroupBucket) []GroupBucket {
	out := make([]GroupBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), 2)
}

func ByConsultant(e entities.Engagement) string { return e.ConsultantLabel() }

func ByTier(e entities.Engagement) string { return e.Tier }

func ByType(e entities.Engagement) string { return string(e.Type) }

func ByStatus(e entities.Engagement) string { return string(e.Status) }

// ByStartMonth groups by the YYYY-MM of the start date.
func ByStartMonth(e entities.Engagement) string { return e.StartDate.UTC().Format("2006-01") }

func ConsultingValue(e entities.Engagement) decimal.Decimal { return e.ConsultingValue }

func CommissionValue(e entities.Engagement) decimal.Decimal { return e.CommissionValue }
