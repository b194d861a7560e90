//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"holidaze/internal"
	"holidaze/internal/controllers"
	"holidaze/internal/noroff"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"holidaze/internal/storage"
	"holidaze/internal/structures"
)

var apiSet = wire.NewSet(
	noroff.NewClient,
	wire.Bind(new(services.AuthApi), new(*noroff.Client)),
	wire.Bind(new(services.BookingApi), new(*noroff.Client)),
	wire.Bind(new(services.ProfileFetcher), new(*noroff.Client)),
	wire.Bind(new(services.VenueCreator), new(*noroff.Client)),
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewStore,
		storage.NewScheduler,

		services.NewSessionService,
		apiSet,
		services.NewRatingLedger,
		services.NewReceiptMailbox,
		services.NewReceiptOrchestrator,
		services.NewVenueService,
		services.NewBookingService,
		services.NewAuthService,

		controllers.NewAuthController,
		controllers.NewRatingController,
		controllers.NewVenueController,
		controllers.NewBookingController,
		controllers.NewReceiptController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
