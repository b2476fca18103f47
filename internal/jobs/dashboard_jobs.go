package jobs

import (
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
)

// PruneDashboards evicts stale cached dashboards so memory stays bounded
// even when users never come back
func (jr *JobRunner) PruneDashboards() {
	jr.runWithRecovery("PruneDashboards", func() {
		removed := jr.dashboards.Prune()
		if removed > 0 {
			logger.Info("Stale dashboards pruned", "count", removed)
		}
	})
}
