package di

import (
	"github.com/strungco/stringmart/internal/adapter/notify"
	"github.com/strungco/stringmart/internal/app"
	"github.com/strungco/stringmart/internal/config"
	"github.com/strungco/stringmart/internal/logger"
	"github.com/strungco/stringmart/internal/pkg/auth"
	"github.com/strungco/stringmart/internal/server/http/router"
	"github.com/strungco/stringmart/internal/storage/postgres"
	"github.com/strungco/stringmart/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(client notify.Client) usecase.Notifier { return client }),
		fx.Provide(func(client notify.Client) app.NotificationSink { return client }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
