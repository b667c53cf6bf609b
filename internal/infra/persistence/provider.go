// Package persistence selects the card record store from configuration.
package persistence

import (
	"context"
	"log/slog"

	"bizcard/config"
	"bizcard/internal/domain/constants"
	"bizcard/internal/domain/lifecycle"
	"bizcard/internal/domain/repository"
	"bizcard/internal/infra/firebaseapp"
	"bizcard/internal/infra/persistence/firestore"
	"bizcard/internal/infra/persistence/memory"
	"bizcard/internal/infra/persistence/mongo"
	"bizcard/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the card store, injected by Fx
type StoreParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.Loader
}

// NewCardRepository creates the CardRepository for the configured store driver.
// Only the selected backend is connected.
func NewCardRepository(params StoreParams) (repository.CardRepository, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("driver", driver))

	switch driver {
	case constants.StoreDriverFirestore:
		return newFirestoreStore(params, logger)

	case constants.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres store")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		if params.Config.Store.AutoMigrate {
			params.Lc.Append(fx.Hook{
				OnStart: func(startCtx context.Context) error {
					ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
					defer cancel()

					return postgres.Migrate(ctx, db)
				},
			})
		}
		logger.Info("Using PostgreSQL card store")

		return postgres.NewCardRepository(db), nil

	case constants.StoreDriverMongo:
		collection, err := mongo.New(mongo.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB card store")

		return mongo.NewCardRepository(collection), nil

	case constants.StoreDriverMemory:
		logger.Warn("Using in-memory card store, cards are lost on restart")

		return memory.NewCardRepository(), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}
}

func newFirestoreStore(params StoreParams, logger *slog.Logger) (repository.CardRepository, error) {
	app, err := params.Firebase.App(params.Ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	collection := firestore.DefaultCollection
	if params.Config.Firebase != nil && params.Config.Firebase.Collection != "" {
		collection = params.Config.Firebase.Collection
	}
	logger.Info("Using Firestore card store", slog.String("collection", collection))

	return firestore.NewCardRepository(client, collection), nil
}

// Module provides the card store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCardRepository),
)
