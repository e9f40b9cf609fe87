package router

import (
	"go.uber.org/fx"

	"github.com/strungco/stringmart/internal/app"
	"github.com/strungco/stringmart/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.StringingFacade) handlers.StringingFacade { return facade }),
	fx.Provide(Setup),
)
