package pipelineimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const runTimeout = 10 * time.Minute

// ScheduleDailyFetch sets up a daily job running the same single-shot
// pipeline. APOD publishes one record per day, so one run per day is
// enough.
func (p *PipelineImpl) ScheduleDailyFetch(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	atTime := gocron.NewAtTime(
		uint(p.Config.Schedule.Hour),
		uint(p.Config.Schedule.Minute),
		0,
	)

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(atTime)),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, stopping daily fetch job")
				return
			}

			runCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()

			p.Logger.Info("Starting scheduled fetch")

			path, err := p.Run(runCtx)
			if err != nil {
				p.Logger.Error("Scheduled fetch failed", "error", err)
				p.Telegram.SendMessageToUser("Scheduled fetch failed: " + err.Error())
				return
			}

			p.Logger.Info("Scheduled fetch completed", "path", path)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule daily fetch: %w", err)
	}

	scheduler.Start()
	p.Logger.Info("Daily fetch scheduled",
		"hour", p.Config.Schedule.Hour,
		"minute", p.Config.Schedule.Minute)

	go func() {
		<-ctx.Done()
		p.Logger.Info("Stopping daily fetch scheduler")
		if err := scheduler.Shutdown(); err != nil {
			p.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
