package store

import (
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
)

// Storages aggregates all repositories behind a single constructor so the
// service layer receives one wired dependency.
type Storages struct {
	UserRepository     UserRepository
	MovieRepository    MovieRepository
	ReviewRepository   ReviewRepository
	FavoriteRepository FavoriteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		MovieRepository:    NewMovieRepository(db, logger),
		ReviewRepository:   NewReviewRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
	}
}
