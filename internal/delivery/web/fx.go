package web

import (
	"go.uber.org/fx"
)

// Module provides the HTTP handlers and router for fx dependency injection
var Module = fx.Module("web",
	fx.Provide(NewWebhookHandler),
	fx.Provide(NewAdminHandler),
	fx.Provide(NewRouter),
)
