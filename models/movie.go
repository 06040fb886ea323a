package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is one catalog entry.
type Movie struct {
	MovieID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Genres      []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	Year        int                `bson:"year,omitempty" json:"year,omitempty"`
	Director    string             `bson:"director,omitempty" json:"director,omitempty"`
	Cast        []string           `bson:"cast,omitempty" json:"cast,omitempty"`
	PosterURL   string             `bson:"poster_url,omitempty" json:"poster_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Movie model.
func (m Movie) CollectionName() string {
	return "movies"
}

// MovieFilter narrows a catalog listing. Zero values mean "no constraint".
type MovieFilter struct {
	// Genre matches movies whose genre list contains the value.
	Genre string

	// Year matches the release year exactly.
	Year int

	// Search is a case-insensitive substring match on the title.
	Search string
}

// Page describes catalog pagination. Page numbers are 1-based.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to sane defaults: page numbers start at 1 and
// the page size is capped at 100 items.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 || p.Size > 100 {
		p.Size = 20
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Size)
}
