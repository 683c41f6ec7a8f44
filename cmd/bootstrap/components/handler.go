package components

import (
	"clinic-booking/internal/handler"
	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
