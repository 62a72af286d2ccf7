package components

import (
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/config"
	"relecloud-api/internal/usecase"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDestinationCommands,
		commands.NewCruiseCommands,
		commands.NewReviewCommands,
		commands.NewPurchaseCommands,
		NewInfoRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewDestinationQueries,
		queries.NewCruiseQueries,
		queries.NewReviewQueries,
		queries.NewInfoRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewInfoRequestCommands(uow shared.UnitOfWork, notifier commands.Notifier, clk clock.Clock, cfg config.Config) commands.InfoRequestCommands {
	return commands.NewInfoRequestCommands(uow, notifier, clk, cfg.SMTP.SalesInbox)
}
