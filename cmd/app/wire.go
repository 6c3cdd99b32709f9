//go:build wireinject
// +build wireinject

package main

import (
	"fieldforce/config"
	"fieldforce/internal/command"
	"fieldforce/internal/cron"
	"fieldforce/internal/database"
	"fieldforce/internal/handler"
	"fieldforce/internal/identity"
	"fieldforce/internal/mail"
	"fieldforce/internal/middleware"
	"fieldforce/internal/router"
	"fieldforce/internal/service"
	"fieldforce/internal/storage"
	"fieldforce/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			identity.NewFirebaseBridge,
			storage.NewGCSResumeStore,
			mail.NewMailer,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(command.ProviderSet))
}
