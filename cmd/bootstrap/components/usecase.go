package components

import (
	"clubhouse/internal/usecase"
	"clubhouse/internal/usecase/commands"
	"clubhouse/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCreditCommands,
		commands.NewFreezeCommands,
		commands.NewWaitlistCommands,
		commands.NewBillingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMemberQueries,
		queries.NewFreezeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
