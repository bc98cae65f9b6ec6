// Package scheduler runs named recurring jobs. Each job runs once when the
// scheduler starts and then every interval; a tick that fires while the
// previous run of the same job is still in flight is skipped.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"realty/config"
	"realty/infras/otel"
	"realty/shared/constant"
	"realty/shared/logger"
	"realty/shared/timezone"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrJobExists   = errors.New("job already registered")
	ErrJobNotFound = errors.New("job not found")
	ErrJobRunning  = errors.New("job is already running")
	ErrInterval    = errors.New("job interval must be a positive whole number of seconds")
)

type JobFunc func(ctx context.Context) error

type JobStatus struct {
	Name      string        `json:"name"`
	Interval  time.Duration `json:"interval"`
	IsRunning bool          `json:"is_running"`
	LastRun   *time.Time    `json:"last_run,omitempty"`
	NextRun   *time.Time    `json:"next_run,omitempty"`
	LastError string        `json:"last_error,omitempty"`
	Runs      int64         `json:"runs"`
	Skipped   int64         `json:"skipped"`
}

type job struct {
	name     string
	interval time.Duration
	execute  JobFunc
	running  atomic.Bool
	runs     atomic.Int64
	skipped  atomic.Int64

	mu        sync.Mutex
	lastRun   time.Time
	nextRun   time.Time
	lastError string
}

type Scheduler struct {
	mu       sync.Mutex
	jobs     map[string]*job
	order    []string
	cron     *cron.Cron
	started  bool
	timeout  time.Duration
	inFlight sync.WaitGroup
	otel     otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) *Scheduler {
	return &Scheduler{
		jobs:    map[string]*job{},
		timeout: time.Duration(cfg.Scheduler.JobTimeoutSeconds) * time.Second,
		otel:    otl,
	}
}

// RegisterJob adds a job definition. It does not run it; jobs registered after
// Start are picked up by the next Start. Intervals have one second resolution,
// matching cron.Every.
func (s *Scheduler) RegisterJob(name string, interval time.Duration, fn JobFunc) error {
	if interval < time.Second || interval%time.Second != 0 {
		return fmt.Errorf("%w: %s", ErrInterval, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("%w: %s", ErrJobExists, name)
	}

	s.jobs[name] = &job{name: name, interval: interval, execute: fn}
	s.order = append(s.order, name)

	log.Info().Str("job", name).Dur("interval", interval).Msg("Registered scheduled job")

	return nil
}

// Start runs every registered job once and then on its interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		log.Warn().Msg("Scheduler already started")

		return
	}

	s.cron = cron.New(
		cron.WithLocation(timezone.GetLocation()),
		cron.WithLogger(cronLogger{logger: logger.Job("cron")}),
	)

	for _, name := range s.order {
		j := s.jobs[name]

		s.cron.Schedule(cron.Every(j.interval), cron.FuncJob(func() { s.tick(j) }))

		s.inFlight.Add(1)

		go func() {
			defer s.inFlight.Done()

			s.tick(j)
		}()
	}

	s.cron.Start()
	s.started = true

	log.Info().Int("jobs", len(s.order)).Msg("Scheduler started")
}

// Stop cancels all timers. Runs already in flight are left to finish; use Wait
// to block on them.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		log.Warn().Msg("Scheduler not started")

		return
	}

	s.cron.Stop()
	s.started = false

	log.Info().Msg("Scheduler stopped")
}

// Wait blocks until in-flight runs finish or ctx is done.
func (s *Scheduler) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		s.inFlight.Wait()

		s.mu.Lock()
		c := s.cron
		s.mu.Unlock()

		if c != nil {
			<-c.Stop().Done()
		}

		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for scheduled jobs: %w", ctx.Err())
	}
}

func (s *Scheduler) IsStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}

// RunJob runs the named job now, on the caller's goroutine, under the same
// no-overlap guard as scheduled ticks.
func (s *Scheduler) RunJob(ctx context.Context, name string) error {
	j, ok := s.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}

	return s.run(ctx, j, j.execute)
}

// RunJobFunc runs fn in place of the named job's own function, under that
// job's guard, timeout and bookkeeping. Callers use it to collect the result
// of their own run.
func (s *Scheduler) RunJobFunc(ctx context.Context, name string, fn JobFunc) error {
	j, ok := s.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}

	return s.run(ctx, j, fn)
}

func (s *Scheduler) JobStatus(name string) (JobStatus, bool) {
	j, ok := s.lookup(name)
	if !ok {
		return JobStatus{}, false
	}

	return j.status(), true
}

func (s *Scheduler) AllJobsStatus() []JobStatus {
	s.mu.Lock()
	jobs := make([]*job, 0, len(s.order))

	for _, name := range s.order {
		jobs = append(jobs, s.jobs[name])
	}
	s.mu.Unlock()

	statuses := make([]JobStatus, len(jobs))
	for i, j := range jobs {
		statuses[i] = j.status()
	}

	return statuses
}

func (s *Scheduler) JobNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.order)
}

func (s *Scheduler) lookup(name string) (*job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[name]

	return j, ok
}

func (s *Scheduler) tick(j *job) {
	err := s.run(context.Background(), j, j.execute)
	if errors.Is(err, ErrJobRunning) {
		return
	}

	if err != nil {
		logger.Job(j.name).Error().Err(err).Msg("Scheduled job failed")
	}
}

func (s *Scheduler) run(ctx context.Context, j *job, fn JobFunc) (err error) {
	jobLog := logger.Job(j.name)

	if !j.running.CompareAndSwap(false, true) {
		j.skipped.Add(1)
		jobLog.Warn().Msg("Job still running, skipping this run")

		return ErrJobRunning
	}
	defer j.running.Store(false)

	now := timezone.Now()

	j.mu.Lock()
	j.lastRun = now
	j.nextRun = now.Add(j.interval)
	j.mu.Unlock()

	j.runs.Add(1)

	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+"."+j.name)
	defer scope.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", j.name, r)
			jobLog.Error().Str("stack", string(debug.Stack())).Msg("Recovered from job panic")
		}

		scope.TraceIfError(err)
		j.recordResult(err)
	}()

	jobLog.Info().Msg("Running job")

	start := time.Now()
	err = fn(ctx)

	jobLog.Info().Dur("elapsed", time.Since(start)).Bool("ok", err == nil).Msg("Job finished")

	return err
}

func (j *job) recordResult(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err != nil {
		j.lastError = err.Error()

		return
	}

	j.lastError = ""
}

func (j *job) status() JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()

	status := JobStatus{
		Name:      j.name,
		Interval:  j.interval,
		IsRunning: j.running.Load(),
		LastError: j.lastError,
		Runs:      j.runs.Load(),
		Skipped:   j.skipped.Load(),
	}

	if !j.lastRun.IsZero() {
		lastRun, nextRun := j.lastRun, j.nextRun
		status.LastRun = &lastRun
		status.NextRun = &nextRun
	}

	return status
}
