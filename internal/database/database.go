package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/medscribe/core/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrMissingURI means no Mongo connection string could be resolved from the
// config file or the MONGODB_URI environment variable. Nothing works without
// the store, so callers should treat this as fatal.
var ErrMissingURI = errors.New("mongodb connection string is not configured")

// Connect opens a client against the configured Mongo deployment and returns
// a handle to the service database. The handle is created once at startup and
// injected into the repositories; the underlying driver pools connections for
// the life of the process.
func Connect(ctx context.Context, cfg *config.AppConfig) (*mongo.Database, error) {
	uri := strings.TrimSpace(cfg.Mongo.URIValue())
	if uri == "" {
		return nil, ErrMissingURI
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return client.Database(cfg.Mongo.DatabaseName()), nil
}
