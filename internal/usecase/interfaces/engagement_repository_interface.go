package interfaces

import (
	"context"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
)

//go:generate mockgen -source=engagement_repository_interface.go -destination=mocks/engagement_repository_mock.go -package=mock_interfaces

// IEngagementRepository abstracts persistence for Engagement.
//
// Contract notes:
//   - List receives the filter as-is; implementations may narrow the result
//     with it but callers still run the filter pipeline over what comes back.
//   - GetByID and Update return a zero Engagement (empty ID) when the id does
//     not exist.
//   - Update persists the whole patch in a single write: either every field
//     lands or none does. Concurrent updates are last-write-wins.
//   - Errors are I/O failures and reach the caller unchanged.
type IEngagementRepository interface {
	List(ctx context.Context, filter analytics.FilterSpec) ([]entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	Update(ctx context.Context, id string, patch entities.EngagementPatch) (entities.Engagement, error)
	Delete(ctx context.Context, id string) error
}
