//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"bevlog/internal"
	"bevlog/internal/controllers"
	"bevlog/internal/providers"
	"bevlog/internal/services"
	"bevlog/internal/storage"
	"bevlog/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewFileStore,
		storage.NewScheduler,
		services.NewTrackerService,
		wire.Bind(new(providers.StatsSource), new(services.TrackerServiceInterface)),

		ProvideBundle,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
