// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// MongoConnector owns the process-wide document store client.
//
// The client is created lazily by the first caller that needs a collection.
// Concurrent first callers share a single in-flight attempt and its result,
// so at most one connection pool ever exists. A failed attempt leaves no
// state behind and the next caller tries again.
type MongoConnector struct {
	cfg    config.Mongo
	logger *logger.Logger

	// dial opens and verifies a new client.
	dial func(ctx context.Context) (*mongo.Client, error)

	group  singleflight.Group
	mu     sync.Mutex
	client *mongo.Client
}

// NewMongoConnector returns a connector for cfg. No connection is opened
// until [MongoConnector.Database] or [MongoConnector.Collection] is called.
func NewMongoConnector(cfg config.Mongo, log *logger.Logger) *MongoConnector {
	c := &MongoConnector{
		cfg:    cfg,
		logger: log,
	}
	c.dial = c.dialClient
	return c
}

// Database returns the configured database, connecting first if necessary.
// Connection failures are wrapped with [ErrDatabaseConnection].
func (c *MongoConnector) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	return client.Database(c.cfg.Database), nil
}

// Collection implements [CollectionProvider].
func (c *MongoConnector) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := c.Database(ctx)
	if err != nil {
		return nil, err
	}

	return db.Collection(name), nil
}

// EnsureCollection creates the named collection when it does not exist yet.
func (c *MongoConnector) EnsureCollection(ctx context.Context, name string) error {
	db, err := c.Database(ctx)
	if err != nil {
		return err
	}

	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("%w: listing collections: %w", ErrExecutingQuery, err)
	}
	if slices.Contains(names, name) {
		return nil
	}

	if err = db.CreateCollection(ctx, name); err != nil {
		return fmt.Errorf("%w: creating collection %q: %w", ErrExecutingQuery, name, err)
	}
	c.logger.Info().Str("collection", name).Msg("collection created")

	return nil
}

// Disconnect closes the client if one was ever created.
func (c *MongoConnector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	return err
}

func (c *MongoConnector) connect(ctx context.Context) (*mongo.Client, error) {
	if client := c.current(); client != nil {
		return client, nil
	}

	v, err, _ := c.group.Do("connect", func() (any, error) {
		if client := c.current(); client != nil {
			return client, nil
		}

		client, err := c.dial(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.client = client
		c.mu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*mongo.Client), nil
}

func (c *MongoConnector) current() *mongo.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.client
}

func (c *MongoConnector) dialClient(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(c.cfg.URI).
		SetMaxPoolSize(c.cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		c.logger.Err(err).Str("func", "*MongoConnector.dialClient").Msg("error creating document store client")
		return nil, fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		c.logger.Err(err).Str("func", "*MongoConnector.dialClient").Msg("error connecting document store (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}

	c.logger.Info().Str("func", "*MongoConnector.dialClient").Str("database", c.cfg.Database).Msg("connected to document store successfully")
	return client, nil
}

// databaseProvider serves collections of an already connected database.
type databaseProvider struct {
	db *mongo.Database
}

// NewDatabaseProvider wraps an existing database handle as a
// [CollectionProvider].
func NewDatabaseProvider(db *mongo.Database) CollectionProvider {
	return &databaseProvider{db: db}
}

func (p *databaseProvider) Collection(_ context.Context, name string) (*mongo.Collection, error) {
	return p.db.Collection(name), nil
}
