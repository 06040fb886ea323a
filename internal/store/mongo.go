package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the MongoDB client and the application's collections. All
// repositories share one DB instance; the driver's connection pool makes it
// safe for concurrent use.
type DB struct {
	client    *mongo.Client
	database  *mongo.Database
	users     *mongo.Collection
	movies    *mongo.Collection
	reviews   *mongo.Collection
	favorites *mongo.Collection
	logger    *logger.Logger
}

// NewDB connects to MongoDB, verifies the connection with a ping, and
// ensures all indexes the application relies on. Any failure here is
// returned to the caller, which treats it as fatal at startup.
func NewDB(ctx context.Context, cfg config.Mongo, logger *logger.Logger) (*DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	database := client.Database(cfg.Database)
	db := &DB{
		client:    client,
		database:  database,
		users:     database.Collection("users"),
		movies:    database.Collection("movies"),
		reviews:   database.Collection("reviews"),
		favorites: database.Collection("favorites"),
		logger:    logger,
	}

	if err := db.ensureIndexes(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to MongoDB")
	return db, nil
}

// ensureIndexes creates the indexes the data model depends on:
//   - users.email unique (identifier uniqueness across all accounts);
//   - users.reset_token for password-reset lookups;
//   - movies catalog indexes for filtering and search;
//   - compound unique (movie_id, user_id) on reviews — one review per
//     account per movie;
//   - compound unique (user_id, movie_id) on favorites — idempotent relation.
func (db *DB) ensureIndexes(ctx context.Context) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "reset_token", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	if _, err := db.users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}

	movieIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "genres", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := db.movies.Indexes().CreateMany(ctx, movieIndexes); err != nil {
		return fmt.Errorf("movie indexes: %w", err)
	}

	reviewIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "movie_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := db.reviews.Indexes().CreateMany(ctx, reviewIndexes); err != nil {
		return fmt.Errorf("review indexes: %w", err)
	}

	favoriteIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "movie_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.favorites.Indexes().CreateMany(ctx, favoriteIndexes); err != nil {
		return fmt.Errorf("favorite indexes: %w", err)
	}

	return nil
}

// Close disconnects the underlying MongoDB client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
