package components

import (
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/infra/readstore"
	"relecloud-api/internal/infra/uow"
	"relecloud-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewDestinationReadStore,
			fx.As(new(queries.DestinationReadStore)),
		),
		fx.Annotate(
			readstore.NewCruiseReadStore,
			fx.As(new(queries.CruiseReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewInfoRequestReadStore,
			fx.As(new(queries.InfoRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
