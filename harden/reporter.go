package harden

import (
	"github.com/sirupsen/logrus"

	"github.com/zonesec/zonesec/preload"
)

// StatusReporter renders per-operation notices on the console logger. It is
// stateless; every reported event is exactly one line.
type StatusReporter struct {
	logger *logrus.Entry
}

func NewStatusReporter(logger *logrus.Entry) *StatusReporter {
	return &StatusReporter{logger: logger}
}

func (r *StatusReporter) Header(zoneName string) {
	r.logger.Infof("------[ domain level checks for: %s ]------", zoneName)
}

func (r *StatusReporter) ZoneResolved(zone Zone) {
	r.logger.Infof("[✓] zone ID: %s", zone.ID)
}

func (r *StatusReporter) Outcome(outcome Outcome) {
	switch outcome.Result {
	case ResultApplied:
		r.logger.Infof("[✓] %s", outcome.Detail)
	case ResultSkipped:
		r.logger.Infof("[i] %s skipped: %s", outcome.OperationID, outcome.Detail)
	case ResultFailed:
		r.logger.Warnf("[✗] %s failed: %s", outcome.OperationID, outcome.Detail)
	}
}

func (r *StatusReporter) Preload(result preload.Result) {
	switch result.Status {
	case preload.StatusSuccess:
		r.logger.Info("[✓] domain submitted to the HSTS preload list")
	case preload.StatusRemoteErrors:
		for _, notice := range result.Errors {
			r.logger.Warnf("[✗] %s - %s", notice.Summary, notice.Message)
		}
	case preload.StatusTransportFailure:
		r.logger.Warnf("[✗] failed to submit domain to the HSTS preload list: %s", result.Detail)
	}

	for _, notice := range result.Warnings {
		r.logger.Infof("[i] %s - %s", notice.Summary, notice.Message)
	}
}

func (r *StatusReporter) Done() {
	r.logger.Info("configuration complete")
}
