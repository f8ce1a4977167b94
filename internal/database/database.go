// FilePath: internal/database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	nuts "github.com/vaudience/go-nuts"
	"github.com/vesselworks/shorestation/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectTimeout bounds the reachability check done at construction time.
const connectTimeout = 5 * time.Second

// DB is the handle repositories use to reach the storage backend. The
// driver's client owns the connection pool; the pool is safe for
// concurrent use and lives for the process lifetime.
type DB interface {
	Client() *mongo.Client
	Database() *mongo.Database
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// MongoDB represents a pooled MongoDB connection
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// New parses the connection URI into client options and creates the
// pooled client. A malformed URI or an unreachable backend fails
// construction; callers should treat that as fatal.
func New(cfg config.MongoConfig) (DB, error) {
	opts := options.Client().ApplyURI(cfg.URI)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error reaching MongoDB: %w", err)
	}

	nuts.L.Infof("[MongoDB] Connected to database %q", cfg.Database)
	return &MongoDB{client: client, db: client.Database(cfg.Database)}, nil
}

func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
