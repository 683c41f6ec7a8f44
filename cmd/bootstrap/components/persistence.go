package components

import (
	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/infra/paygate"
	"clinic-booking/internal/infra/readstore"
	"clinic-booking/internal/infra/uow"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			NewPaymentClient,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(api.SignatureVerifier)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPaymentClient(cfg config.Config) *paygate.Client {
	return paygate.NewClient(cfg.Payment)
}
