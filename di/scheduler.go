package di

import (
	"fmt"
	"realty/config"
	"realty/infras/otel"
	reminderService "realty/internal/domains/reminder/service"
	"realty/shared/scheduler"
	"time"
)

// NewScheduler builds the process-wide scheduler with every recurring job
// registered. Starting it is left to the entrypoint.
func NewScheduler(cfg *config.Config, otl otel.Otel, reminders reminderService.Reminder) (*scheduler.Scheduler, error) {
	sched := scheduler.New(cfg, otl)

	interval := time.Duration(cfg.Scheduler.ReminderIntervalSeconds) * time.Second

	if err := sched.RegisterJob(reminderService.JobName, interval, reminders.Job()); err != nil {
		return nil, fmt.Errorf("registering reminder job: %w", err)
	}

	return sched, nil
}
