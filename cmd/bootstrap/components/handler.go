package components

import (
	"relecloud-api/internal/handler"
	"relecloud-api/internal/handler/api"
	"relecloud-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDestinationHandler,
		api.NewCruiseHandler,
		api.NewReviewHandler,
		api.NewInfoRequestHandler,
		api.NewPurchaseHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	destination *api.DestinationHandler,
	cruise *api.CruiseHandler,
	review *api.ReviewHandler,
	infoRequest *api.InfoRequestHandler,
	purchase *api.PurchaseHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Destination: destination,
		Cruise:      cruise,
		Review:      review,
		InfoRequest: infoRequest,
		Purchase:    purchase,
	}
}
