package main

import (
	"context"
	"log/slog"

	"credgate/config"
	"credgate/internal/delivery"
	"credgate/internal/delivery/cli"
	"credgate/internal/domain/policy"
	"credgate/internal/domain/service"
	"credgate/internal/infra/auth"
	logs "credgate/internal/infra/log"
	"credgate/internal/infra/persistence/memory"
	"credgate/internal/infra/policylist"
	"credgate/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In

	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		policylist.NewPolicyStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			policy.NewUsernameValidator,
			newPasswordValidator,
		),
	)
}

// newPasswordValidator applies the configured minimum length.
func newPasswordValidator(store *policy.Store, hasher service.PasswordHasher, cfg *config.Config) *policy.PasswordValidator {
	minLength := config.DefaultMinPasswordLength
	if cfg.PasswordStrength != nil {
		minLength = cfg.PasswordStrength.MinLength
	}

	return policy.NewPasswordValidator(store, hasher, minLength)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cli.NewConsole,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Delivery stopped with error", slog.Any("error", err))
				if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
