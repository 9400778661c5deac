package mongo

import (
	"context"
	"fmt"
	"time"

	"runcoach/running-app/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
)

// Connect opens a client against the configured MongoDB deployment and
// verifies it with a primary ping before handing back the application
// database. A client that cannot be pinged is disconnected and not returned.
func Connect(cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	// Connect alone does not guarantee a reachable server.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), pingTimeout)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}

// Disconnect gracefully closes the client with a bounded timeout.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes for every collection the repositories
// use. Failures are logged by the per-collection helpers, not propagated.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	EnsureUserIndexes(ctx, db.Collection(userCollectionName))
	EnsureTrainingPlanIndexes(ctx, db.Collection(trainingPlanCollectionName))
	EnsureTrainingDayIndexes(ctx, db.Collection(trainingDayCollectionName))
}
