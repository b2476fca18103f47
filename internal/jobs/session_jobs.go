package jobs

import (
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
)

// CleanupSessions drops expired sessions from the in-memory store
func (jr *JobRunner) CleanupSessions() {
	jr.runWithRecovery("CleanupSessions", func() {
		removed := jr.sessions.GC()
		if removed > 0 {
			logger.Info("Expired sessions removed", "count", removed, "remaining", jr.sessions.Len())
		}
	})
}
