package components

import (
	"clubhouse/internal/infra/query"
	"clubhouse/internal/infra/readstore"
	"clubhouse/internal/usecase/queries"
	"clubhouse/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Member
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		// Freeze
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FreezeReadQueries)),
		),
		fx.Annotate(
			readstore.NewFreezeReadStore,
			fx.As(new(queries.FreezeReadStore)),
		),
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileReadQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(shared.ContactDirectory)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
