// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the application: the
// authentication and lockout state machine, catalog management, reviews,
// and favorites. Services speak models and sentinel errors; persistence
// details stay behind the store interfaces.
package service

import (
	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/mail"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
)

// Services bundles every business-logic service for injection into the
// transport layer.
type Services struct {
	AuthService
	MovieService
	ReviewService
	FavoriteService
}

// NewServices wires all services to the given storages and mail sender.
func NewServices(storages *store.Storages, mailSender mail.Sender, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages, mailSender, cfg.Auth, cfg.Mail, logger),
		MovieService:    NewMovieService(storages, logger),
		ReviewService:   NewReviewService(storages, logger),
		FavoriteService: NewFavoriteService(storages, logger),
	}
}
