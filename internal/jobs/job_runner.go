package jobs

import (
	"github.com/reihansyahfitra/hes-vault-client/internal/config"
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
	"github.com/reihansyahfitra/hes-vault-client/internal/web"
)

// JobRunner coordinates the periodic housekeeping jobs
type JobRunner struct {
	sessions   *web.SessionStore
	dashboards service.DashboardService
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(sessions *web.SessionStore, dashboards service.DashboardService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		sessions:   sessions,
		dashboards: dashboards,
		config:     cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every housekeeping job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.CleanupSessions()
	jr.PruneDashboards()
}
