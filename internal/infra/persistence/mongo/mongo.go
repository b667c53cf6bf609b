// Package mongo stores business cards in a MongoDB collection.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"bizcard/config"
	"bizcard/internal/domain/lifecycle"
	"bizcard/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	defaultDatabase       = "bizcard"
	defaultCollection     = "businessCards"
	defaultConnectTimeout = 10 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the card collection. Indexes are
// created when the application starts.
func New(params Params) (*mongodriver.Collection, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required for the mongo store")
	}

	database := cfg.Database
	if database == "" {
		database = defaultDatabase
	}
	collectionName := cfg.Collection
	if collectionName == "" {
		collectionName = defaultCollection
	}
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	client, err := mongodriver.Connect(context.Background(), options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(database).Collection(collectionName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("MongoDB card store ready",
				slog.String("database", database),
				slog.String("collection", collectionName),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return collection, nil
}

// EnsureIndexes creates the unique slug index and the owner and ordering indexes.
func EnsureIndexes(ctx context.Context, collection *mongodriver.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "urlSlug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_url_slug"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_user_id_created_at"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create MongoDB card indexes")
	}

	return nil
}
