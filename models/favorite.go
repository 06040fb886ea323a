package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite marks one movie as a favorite of one account. A compound unique
// index on (user_id, movie_id) makes the relation idempotent.
type Favorite struct {
	FavoriteID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	MovieID    primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Favorite model.
func (f Favorite) CollectionName() string {
	return "favorites"
}
