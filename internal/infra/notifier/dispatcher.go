package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/pkg/config"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

const (
	baseRetryDelay  = 30 * time.Second
	maxRetryDelay   = time.Hour
	cleanupInterval = time.Hour
)

// Dispatcher drains the notification outbox on a fixed interval.
type Dispatcher struct {
	uow    shared.UnitOfWork
	sender Sender
	cfg    config.NotifierConfig
	clock  clock.Clock
	sched  gocron.Scheduler
}

func NewDispatcher(uow shared.UnitOfWork, sender Sender, cfg config.NotifierConfig, clock clock.Clock) *Dispatcher {
	return &Dispatcher{
		uow:    uow,
		sender: sender,
		cfg:    cfg,
		clock:  clock,
	}
}

func (d *Dispatcher) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return errs.Wrap(err, "failed to create scheduler")
	}

	_, err = sched.NewJob(
		gocron.DurationJob(d.cfg.Interval),
		gocron.NewTask(d.tick, ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("notification-dispatch"),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule notification dispatch")
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cleanupInterval),
		gocron.NewTask(d.cleanup, ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("idempotency-cleanup"),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule idempotency cleanup")
	}

	sched.Start()
	d.sched = sched
	slog.Info("notification dispatcher started", "interval", d.cfg.Interval.String(), "jobs", len(sched.Jobs()))
	return nil
}

func (d *Dispatcher) Stop() error {
	if d.sched == nil {
		return nil
	}
	return d.sched.Shutdown()
}

func (d *Dispatcher) tick(ctx context.Context) {
	sent, err := d.RunOnce(ctx)
	if err != nil {
		slog.Error("notification dispatch failed", "error", err.Error())
		return
	}
	if sent > 0 {
		slog.Info("notifications sent", "count", sent)
	}
}

func (d *Dispatcher) cleanup(ctx context.Context) {
	n, err := d.CleanupIdempotencyKeys(ctx)
	if err != nil {
		slog.Error("idempotency cleanup failed", "error", err.Error())
		return
	}
	if n > 0 {
		slog.Info("expired idempotency keys deleted", "count", n)
	}
}

// RunOnce claims one batch of due jobs and reports how many were sent.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), d.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			now := d.clock.Now()
			sendErr := d.deliver(ctx, job)
			if sendErr == nil {
				if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, shared.NotificationStatusSent, nil, now); err != nil {
					return err
				}
				sent++
				continue
			}

			status, runAt := d.retryPlan(job.Attempts, now)
			msg := sendErr.Error()
			slog.Warn("notification delivery failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempt", job.Attempts+1,
				"status", status,
				"error", msg)
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, &msg, runAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	if job.Kind != shared.NotificationKindEmail {
		return errs.New("unsupported notification kind: " + job.Kind)
	}
	m, err := render(job.Topic, job.Payload)
	if err != nil {
		return err
	}
	return d.sender.Send(ctx, m.To, m.Subject, m.Body)
}

// retryPlan keeps the job queued with exponential backoff until MaxAttempts is reached.
func (d *Dispatcher) retryPlan(attempts int, now time.Time) (string, time.Time) {
	if int32(attempts+1) >= d.cfg.MaxAttempts { // #nosec G115 -- attempts is bounded by MaxAttempts
		return shared.NotificationStatusFailed, now
	}
	delay := baseRetryDelay << attempts
	if delay <= 0 || delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return shared.NotificationStatusQueued, now.Add(delay)
}

func (d *Dispatcher) CleanupIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Idempotency().DeleteExpired(ctx, tx.DB())
		return err
	})
	return n, err
}
