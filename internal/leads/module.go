// Package leads provides the lead nurturing bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"nurture_backend/internal/events"
	apphttp "nurture_backend/internal/http"
	"nurture_backend/internal/leads/handler"
	"nurture_backend/internal/leads/management"
	"nurture_backend/internal/leads/nurture"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/scheduling"
	"nurture_backend/internal/leads/suggestion"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/config"
	"nurture_backend/platform/logger"
	"nurture_backend/platform/phone"
	"nurture_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ModuleConfig combines the config interfaces the leads module reads.
type ModuleConfig interface {
	config.NurtureConfig
}

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the leads module with all its dependencies.
// generator may be nil, in which case suggestions use the built-in templates.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg ModuleConfig, generator suggestion.Generator, log *logger.Logger) (*Module, error) {
	if err := transport.RegisterValidators(val); err != nil {
		return nil, err
	}

	repo := repository.New(pool)
	phones := phone.NewNormalizer(cfg.GetPhoneDefaultRegion())
	composer := suggestion.NewComposer(generator, log)

	// Create focused services (vertical slices)
	mgmtSvc := management.New(repo, eventBus, phones, cfg.GetFollowUpDaysThreshold(), log)
	schedulingSvc := scheduling.New(repo, eventBus, log)
	nurtureSvc := nurture.New(repo, composer, log)

	h := handler.New(mgmtSvc, schedulingSvc, nurtureSvc, val)

	return &Module{handler: h}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// All leads routes require authentication
	leadsGroup := ctx.Protected.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
