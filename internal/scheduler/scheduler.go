package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/baigashl/blog/internal/repo"
	"github.com/robfig/cron/v3"
)

// Run starts a background scheduler that prunes audit log rows older than
// retentionDays at each cronExpr tick. It returns the running cron so the
// caller can Stop it on shutdown.
func Run(auditRepo *repo.AuditRepo, cronExpr string, retentionDays int) (*cron.Cron, error) {
	c := cron.New()

	prune := func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		removed, err := auditRepo.PruneOlderThan(context.Background(), cutoff)
		if err != nil {
			log.Printf("scheduler: prune audit log: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("scheduler: pruned %d audit rows older than %s", removed, cutoff.Format(time.DateOnly))
		}
	}

	if _, err := c.AddFunc(cronExpr, prune); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
