package routes

import (
	"context"
	"fmt"

	"consultoria_xpto/internal/adapter/persistence/repository"
	"consultoria_xpto/internal/infrastructure/config"
	"consultoria_xpto/internal/infrastructure/database"
	"consultoria_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// newRepository selects the data source once, at startup. With
// FIXTURE_FALLBACK the live repository is wrapped so a failed List is
// answered from the fixture dataset.
func newRepository(ctx context.Context, cfg config.Config, zl *zap.Logger) (interfaces.IEngagementRepository, error) {
	var live interfaces.IEngagementRepository
	switch cfg.DataSource {
	case config.DataSourceFixture:
		return repository.NewEngagementFixtureRepository(repository.FixtureEngagements()), nil
	case config.DataSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: %w", err)
		}
		live = repository.NewEngagementDynamoRepository(ddb, cfg.DynamoDB.TableName, zl)
	case config.DataSourcePostgres:
		db, err := database.ConnectPostgres(cfg.Postgres.DSN, zl)
		if err != nil {
			return nil, err
		}
		if err := repository.MigrateEngagements(db); err != nil {
			return nil, fmt.Errorf("migrate engagements: %w", err)
		}
		live = repository.NewEngagementGormRepository(db, zl)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}

	if !cfg.FixtureFallback {
		return live, nil
	}
	fixture := repository.NewEngagementFixtureRepository(repository.FixtureEngagements())
	return repository.NewFallbackRepository(live, fixture, zl), nil
}
