package notifier

import (
	"fmt"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/logger"
)

// Reporter sends digests of newly recorded jobs. Every send is best-effort:
// failures are logged and never propagate, since notification is advisory
// and must not change the run's outcome.
type Reporter struct {
	sender Sender
}

// NewReporter creates a Reporter over a sender.
func NewReporter(sender Sender) *Reporter {
	return &Reporter{sender: sender}
}

// Report sends the new-records digest. Nothing is sent for an empty set.
func (r *Reporter) Report(records []*job.Record) {
	if len(records) == 0 {
		return
	}

	if err := r.sender.Send(FormatDigest(records)); err != nil {
		logger.Error("sending digest failed", logger.Fields{
			"records": len(records),
		}, err)
		return
	}

	logger.Info("digest sent", logger.Fields{"records": len(records)})
}

// ReportFailure sends a best-effort notice that the run failed.
func (r *Reporter) ReportFailure(runErr error) {
	text := fmt.Sprintf("Rota check failed: %v", runErr)
	if err := r.sender.Send(text); err != nil {
		logger.Error("sending failure notice failed", nil, err)
	}
}
