package bootstrap

import (
	"context"
	"log/slog"

	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewWorkerRunner,
	),
	fx.Invoke(startWorkers),
)

func NewWorkerRunner(
	cfg config.WorkerConfig,
	logger *slog.Logger,
	completion commands.CompletionCommands,
	idempotency commands.IdempotencyCommands,
	outbox commands.OutboxCommands,
) *worker.Runner {
	return worker.NewRunner(logger,
		worker.CompletionJob(completion, cfg.SweepInterval, cfg.SweepBatchSize),
		worker.IdempotencyPurgeJob(idempotency, cfg.SweepInterval),
		worker.OutboxJob(outbox, cfg.DispatchInterval),
	)
}

func startWorkers(lc fx.Lifecycle, cfg config.WorkerConfig, runner *worker.Runner, logger *slog.Logger) {
	if !cfg.Enabled {
		logger.Info("background workers disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Start(ctx)
			return nil
		},
		OnStop: runner.Stop,
	})
}
