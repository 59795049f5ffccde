package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const auditPurgeJob = "audit-log-retention"

// AuditPurger drops audit entries older than the retention window.
type AuditPurger interface {
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type Options struct {
	AuditRetention     time.Duration
	AuditPurgeInterval time.Duration
	// JobTimeout bounds a single run. Defaults to one minute.
	JobTimeout time.Duration
}

// JobScheduler runs the service's periodic maintenance.
type JobScheduler struct {
	scheduler gocron.Scheduler
	audit     AuditPurger
	opts      Options
	logger    *zap.Logger
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates the scheduler and registers its jobs; nothing runs until Start.
func NewJobScheduler(audit AuditPurger, opts Options, logger *zap.Logger) (*JobScheduler, error) {
	if opts.AuditRetention <= 0 || opts.AuditPurgeInterval <= 0 {
		return nil, errors.New("audit retention and purge interval must be positive")
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		audit:     audit,
		opts:      opts,
		logger:    logger.Named("scheduler"),
		jobs:      make(map[string]gocron.Job),
	}
	if err := js.registerJobs(); err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	js.logger.Info("starting background job scheduler", zap.Int("jobs", len(js.jobs)))
	js.scheduler.Start()
}

// Stop waits for running jobs and stops the scheduler.
func (js *JobScheduler) Stop() error {
	js.logger.Info("stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() error {
	job, err := js.scheduler.NewJob(
		gocron.DurationJob(js.opts.AuditPurgeInterval),
		gocron.NewTask(js.purgeAuditLogs),
		gocron.WithName(auditPurgeJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", auditPurgeJob, err)
	}

	js.mu.Lock()
	js.jobs[auditPurgeJob] = job
	js.mu.Unlock()
	return nil
}

func (js *JobScheduler) purgeAuditLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), js.opts.JobTimeout)
	defer cancel()

	start := time.Now()
	purged, err := js.audit.PurgeExpired(ctx, js.opts.AuditRetention)
	if err != nil {
		js.logger.Error("audit log purge failed", zap.Error(err))
		return
	}
	js.logger.Info("audit logs purged",
		zap.Int64("purged", purged),
		zap.Duration("retention", js.opts.AuditRetention),
		zap.Duration("took", time.Since(start)))
}

// RunNow triggers a registered job outside its schedule.
func (js *JobScheduler) RunNow(name string) error {
	js.mu.RLock()
	job, ok := js.jobs[name]
	js.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	return job.RunNow()
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	jobs := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		jobs = append(jobs, name)
	}
	return map[string]interface{}{
		"total_jobs": len(js.jobs),
		"jobs":       jobs,
	}
}
