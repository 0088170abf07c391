package components

import (
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/pkg/password"
	"rental-booking/internal/usecase"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *password.Hasher {
		return password.NewHasher(bcrypt.DefaultCost)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewListingCommands,
		commands.NewBlackoutCommands,
		commands.NewReviewCommands,
		commands.NewIdempotencyCommands,
		fx.Annotate(
			commands.NewCompletionCommands,
			fx.As(new(commands.CompletionCommands)),
			fx.As(new(queries.ReservationCompleter)),
		),
		func(uow shared.UnitOfWork, q queries.ReservationQueries, cache shared.CalendarCache, clk clock.Clock, cfg config.BookingConfig) commands.ReservationCommands {
			return commands.NewReservationCommands(uow, q, cache, clk, cfg.IdempotencyTTL)
		},
		func(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg config.WorkerConfig) commands.OutboxCommands {
			return commands.NewOutboxCommands(uow, publisher, clk, cfg.DispatchBatch, cfg.MaxAttempts)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewReservationQueries,
		queries.NewBlackoutQueries,
		queries.NewReviewQueries,
		func(listings queries.ListingReadStore, occupancy queries.OccupancyReadStore, cache shared.CalendarCache, cfg config.BookingConfig) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(listings, occupancy, cache, cfg.CalendarMaxDays)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
