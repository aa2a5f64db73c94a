package components

import (
	"clubhouse/internal/handler"
	"clubhouse/internal/handler/api"
	"clubhouse/internal/handler/middleware"
	"clubhouse/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMemberHandler,
		api.NewFreezeHandler,
		api.NewCreditHandler,
		api.NewWaitlistHandler,
		api.NewStripeWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type handlerParams struct {
	fx.In

	Members  *api.MemberHandler
	Freezes  *api.FreezeHandler
	Credits  *api.CreditHandler
	Waitlist *api.WaitlistHandler
	Stripe   *api.StripeWebhookHandler
}

func registerRoutes(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, p handlerParams, auth *middleware.AuthMiddleware) {
	handler.NewRouter(engine, cfg, logger, handler.Handlers{
		Members:  p.Members,
		Freezes:  p.Freezes,
		Credits:  p.Credits,
		Waitlist: p.Waitlist,
		Stripe:   p.Stripe,
	}, auth)
}
