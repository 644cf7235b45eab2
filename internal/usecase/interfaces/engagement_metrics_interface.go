package interfaces

import "consultoria_xpto/internal/domain/entities"

// IEngagementMetrics records lifecycle outcomes.
type IEngagementMetrics interface {
	ObserveCompletion(e entities.Engagement)
	ObserveCancellation(e entities.Engagement)
}
