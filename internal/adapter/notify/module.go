package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/strungco/stringmart/internal/config"
)

// Module exposes the notification client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.NotifierAddress == "" {
		return NopClient{}, nil
	}
	return NewHTTPClient(p.Config.NotifierAddress, p.Logger)
}
