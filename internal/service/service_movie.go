// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// movieService manages the catalog. Reads are public; the HTTP layer gates
// writes behind authentication.
type movieService struct {
	movieRepository    store.MovieRepository
	reviewRepository   store.ReviewRepository
	favoriteRepository store.FavoriteRepository
	logger             *logger.Logger
}

func NewMovieService(storages *store.Storages, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository:    storages.MovieRepository,
		reviewRepository:   storages.ReviewRepository,
		favoriteRepository: storages.FavoriteRepository,
		logger:             logger,
	}
}

// CreateMovie validates and persists a new catalog entry.
func (m *movieService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if err := validateMovie(movie); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdMovie, err := m.movieRepository.CreateMovie(ctx, movie)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", movie.Title).Msg("movie creation ended with error")
		return models.Movie{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	return createdMovie, nil
}

func (m *movieService) GetMovie(ctx context.Context, id primitive.ObjectID) (models.Movie, error) {
	return m.movieRepository.GetMovie(ctx, id)
}

// ListMovies returns one page of the catalog under the given filter.
// Page bounds are normalized here so every caller gets the same defaults.
func (m *movieService) ListMovies(ctx context.Context, filter models.MovieFilter, page models.Page) (models.MovieList, error) {
	list, err := m.movieRepository.ListMovies(ctx, filter, page.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("movie listing ended with error")
		return models.MovieList{}, fmt.Errorf("movie listing ended with error: %w", err)
	}

	return list, nil
}

// UpdateMovie replaces the mutable fields of an existing entry.
func (m *movieService) UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if err := validateMovie(movie); err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedMovie, err := m.movieRepository.UpdateMovie(ctx, movie)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", movie.MovieID.Hex()).Msg("movie update ended with error")
		return models.Movie{}, fmt.Errorf("movie update ended with error: %w", err)
	}

	return updatedMovie, nil
}

// DeleteMovie removes a catalog entry together with its reviews and
// favorite links, so no relation outlives the movie it points to.
func (m *movieService) DeleteMovie(ctx context.Context, id primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	if err := m.movieRepository.DeleteMovie(ctx, id); err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("movie deletion ended with error")
		return err
	}

	if err := m.reviewRepository.DeleteMovieReviews(ctx, id); err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("deleting movie reviews ended with error")
		return fmt.Errorf("deleting movie reviews ended with error: %w", err)
	}
	if err := m.favoriteRepository.DeleteMovieFavorites(ctx, id); err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("deleting movie favorites ended with error")
		return fmt.Errorf("deleting movie favorites ended with error: %w", err)
	}

	return nil
}

func validateMovie(movie models.Movie) error {
	if strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if movie.Year < 0 {
		return fmt.Errorf("year %d is not valid", movie.Year)
	}

	return nil
}
