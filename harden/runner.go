package harden

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/zonesec/zonesec/preload"
)

// DomainSubmitter pushes a domain to the HSTS preload registry.
type DomainSubmitter interface {
	Submit(ctx context.Context, domain string) preload.Result
}

// Runner sequences one full hardening pass: resolve the zone once, run
// every operation, submit the domain to the preload registry last.
type Runner struct {
	provider  Provider
	submitter DomainSubmitter
	reporter  *StatusReporter
	opts      Options
}

func NewRunner(provider Provider, submitter DomainSubmitter, reporter *StatusReporter, opts Options) *Runner {
	return &Runner{
		provider:  provider,
		submitter: submitter,
		reporter:  reporter,
		opts:      opts,
	}
}

// Report collects everything a single run produced.
type Report struct {
	Zone     Zone
	Outcomes []Outcome
	Preload  preload.Result
}

// Err aggregates all non-fatal failures of the run. Callers may log it;
// the exit status stays untouched by design.
func (r *Report) Err() error {
	var result *multierror.Error

	for _, outcome := range r.Outcomes {
		if outcome.Result == ResultFailed {
			result = multierror.Append(result, fmt.Errorf("%s: %s", outcome.OperationID, outcome.Detail))
		}
	}

	switch r.Preload.Status {
	case preload.StatusRemoteErrors:
		for _, notice := range r.Preload.Errors {
			result = multierror.Append(result, fmt.Errorf("preload: %s - %s", notice.Summary, notice.Message))
		}
	case preload.StatusTransportFailure:
		result = multierror.Append(result, fmt.Errorf("preload: %s", r.Preload.Detail))
	case preload.StatusSuccess:
	}

	return result.ErrorOrNil()
}

// Run executes the hardening pass against the named zone. Only a failed
// zone resolution is fatal: without a zone ID no operation is meaningful.
// Everything downstream is contained per operation and reported.
func (r *Runner) Run(ctx context.Context, zoneName string) (*Report, error) {
	r.reporter.Header(zoneName)

	zone, err := r.provider.ZoneIDByName(ctx, zoneName)
	if err != nil {
		return nil, err
	}

	resolved := Zone{Name: zoneName, ID: zone.ID}
	r.reporter.ZoneResolved(resolved)

	report := &Report{Zone: resolved}

	for _, op := range Operations(r.provider, r.opts) {
		outcome := op.Run(ctx, resolved)
		report.Outcomes = append(report.Outcomes, outcome)
		r.reporter.Outcome(outcome)
	}

	// the submission runs regardless of earlier outcomes
	report.Preload = r.submitter.Submit(ctx, zoneName)
	r.reporter.Preload(report.Preload)

	r.reporter.Done()

	return report, nil
}
