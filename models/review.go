package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one account's review of one movie. A compound unique index on
// (movie_id, user_id) guarantees at most one review per account per movie.
type Review struct {
	ReviewID  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MovieID   primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Review model.
func (r Review) CollectionName() string {
	return "reviews"
}
