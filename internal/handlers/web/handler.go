package web

import (
	"errors"

	"go.uber.org/zap"

	"github.com/jdramirez/giftmatch/internal/common/uuid"
	"github.com/jdramirez/giftmatch/internal/export"
	"github.com/jdramirez/giftmatch/internal/services/exchange"
)

// Config holds configuration for the web handler
type Config struct {
	// Service is the exchange service backing every endpoint
	Service exchange.Service

	// Exporter regenerates the spreadsheet after mutations
	Exporter *export.Exporter

	// AdminPassword is the shared secret gating the admin endpoints
	AdminPassword string

	// UUIDGenerator issues request IDs for logging
	UUIDGenerator uuid.UUID

	// Logger for request and error logging
	Logger *zap.Logger
}

// Handler serves the public picker flow and the admin endpoints
type Handler struct {
	service       exchange.Service
	exporter      *export.Exporter
	adminPassword string
	uuid          uuid.UUID
	log           *zap.Logger
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if cfg.Exporter == nil {
		return nil, errors.New("exporter cannot be nil")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("admin password cannot be empty")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.New()
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{
		service:       cfg.Service,
		exporter:      cfg.Exporter,
		adminPassword: cfg.AdminPassword,
		uuid:          gen,
		log:           log,
	}, nil
}
