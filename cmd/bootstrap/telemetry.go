package bootstrap

import (
	"context"

	"ticketline/internal/pkg/config"
	"ticketline/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetry,
	),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config) (*telemetry.Provider, error) {
	provider, err := telemetry.Init(context.Background(), telemetry.Config{
		Enabled:       cfg.Telemetry.Enabled,
		ServiceName:   cfg.Telemetry.ServiceName,
		CollectorAddr: cfg.Telemetry.CollectorAddr,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})

	return provider, nil
}
