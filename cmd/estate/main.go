package main

import (
	"context"
	"log/slog"
	"os"

	"estate/config"
	"estate/internal/delivery"
	"estate/internal/delivery/api"
	"estate/internal/delivery/api/router/handler"
	"estate/internal/domain/repository"
	logs "estate/internal/infra/log"
	"estate/internal/infra/metrics"
	"estate/internal/infra/persistence/memory"
	"estate/internal/infra/storage"
	"estate/internal/usecase"
	"estate/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			loadProperties,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newBucket,
		fx.Annotate(
			newRegistry,
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewPropertyStore,
			fx.Annotate(
				storage.NewSnapshotStore,
				fx.As(new(repository.SnapshotRepository)),
			),
		),
	)
}

// newBucket opens the snapshot bucket and closes it on shutdown
func newBucket(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (*blob.Bucket, error) {
	bucket, err := storage.OpenBucket(ctx, cfg.Store.BucketURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func newPropertyServiceOptions(cfg *config.Config) impl.PropertyServiceOptions {
	return impl.PropertyServiceOptions{
		InputKey:  cfg.Store.InputKey,
		OutputKey: cfg.Store.OutputKey,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newPropertyServiceOptions,
			impl.NewPropertyService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewPropertyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadProperties fills the store before any delivery starts serving
func loadProperties(lc fx.Lifecycle, propertyUC usecase.PropertyUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := propertyUC.LoadProperties(ctx)

			return err
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
