// Package mongo contains the concrete implementation of the persistence layer
// backed by the MongoDB document store.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"passport/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the dependencies for the MongoDB connection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the service database handle.
// The client is disconnected on application stop.
func New(params Params) (*mongo.Database, error) {
	connectTimeout := params.Config.Mongo.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect from mongodb")
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
